package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/interfaces"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/types"
	slackSvc "github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/service/slack"
)

// Digest posts the previous week's carousel to a Slack channel
type Digest struct {
	bathRecordUC interfaces.BathRecord
	slackClient  interfaces.SlackClient
}

// NewDigest creates a new Digest use case
func NewDigest(bathRecordUC interfaces.BathRecord, slackClient interfaces.SlackClient) *Digest {
	return &Digest{
		bathRecordUC: bathRecordUC,
		slackClient:  slackClient,
	}
}

// PublishWeeklyDigest posts the last completed week's approved photos. An empty
// week still gets a message so the channel sees that the job ran.
func (d *Digest) PublishWeeklyDigest(ctx context.Context, channelID types.SlackChannelID) (*model.WeeklyCarousel, error) {
	if channelID == "" {
		return nil, goerr.New("slack channel ID is empty", goerr.T(model.ErrTagValidation))
	}

	carousel, err := d.bathRecordUC.SelectPreviousWeek(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to select previous week for digest")
	}

	_, ts, err := d.slackClient.PostMessageContext(ctx, channelID.String(),
		slack.MsgOptionText(slackSvc.DigestFallbackText(carousel), false),
		slack.MsgOptionBlocks(slackSvc.BuildWeeklyDigestBlocks(carousel)...),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to post weekly digest",
			goerr.V("channelID", channelID),
			goerr.V("weekStart", model.FormatDate(carousel.WeekStart)))
	}

	ctxlog.From(ctx).Info("Weekly digest posted",
		"channelID", channelID,
		"weekStart", model.FormatDate(carousel.WeekStart),
		"photos", len(carousel.BathRecords),
		"messageTS", ts,
	)

	return carousel, nil
}

var _ interfaces.Digest = (*Digest)(nil)
