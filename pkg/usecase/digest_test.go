package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/slack-go/slack"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/interfaces/mocks"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/repository"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/usecase"
)

func TestDigestUseCase_PublishWeeklyDigest(t *testing.T) {
	ctx := context.Background()
	clock := usecase.WithClock(fixedClock(2025, time.September, 16, 9, time.UTC))

	t.Run("posts previous week's photos", func(t *testing.T) {
		bathUC := newUseCase(repository.NewMemory(), clock)
		createRecord(t, bathUC, "Luna", "2025-09-09", 1, true)
		createRecord(t, bathUC, "Max", "2025-09-10", 2, true)
		createRecord(t, bathUC, "Rex", "2025-09-11", 3, false)

		slackClient := &mocks.SlackClientMock{
			PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return channelID, "1757900000.000100", nil
			},
		}

		uc := usecase.NewDigest(bathUC, slackClient)
		carousel, err := uc.PublishWeeklyDigest(ctx, "C0123456")
		gt.NoError(t, err).Required()
		gt.Equal(t, carousel.WeekStart, mustDate(t, "2025-09-08"))
		gt.Equal(t, petNames(carousel.BathRecords), []string{"Luna", "Max"})

		calls := slackClient.PostMessageContextCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, calls[0].ChannelID, "C0123456")
		gt.A(t, calls[0].Options).Length(2)
	})

	t.Run("empty week is still announced", func(t *testing.T) {
		bathUC := newUseCase(repository.NewMemory(), clock)
		slackClient := &mocks.SlackClientMock{
			PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return channelID, "1757900000.000200", nil
			},
		}

		uc := usecase.NewDigest(bathUC, slackClient)
		carousel, err := uc.PublishWeeklyDigest(ctx, "C0123456")
		gt.NoError(t, err).Required()
		gt.True(t, carousel.IsEmpty())
		gt.A(t, slackClient.PostMessageContextCalls()).Length(1)
	})

	t.Run("missing channel is rejected", func(t *testing.T) {
		slackClient := &mocks.SlackClientMock{}
		uc := usecase.NewDigest(newUseCase(repository.NewMemory(), clock), slackClient)

		_, err := uc.PublishWeeklyDigest(ctx, "")
		gt.Error(t, err)
		gt.True(t, model.IsValidationError(err))
		gt.A(t, slackClient.PostMessageContextCalls()).Length(0)
	})

	t.Run("slack failure is returned", func(t *testing.T) {
		slackErr := errors.New("channel_not_found")
		slackClient := &mocks.SlackClientMock{
			PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return "", "", slackErr
			},
		}

		uc := usecase.NewDigest(newUseCase(repository.NewMemory(), clock), slackClient)
		_, err := uc.PublishWeeklyDigest(ctx, "C0123456")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, slackErr))
	})
}
