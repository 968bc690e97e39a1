package slack

import (
	"fmt"

	"github.com/slack-go/slack"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
)

// MaxDigestPhotos caps image blocks so a digest stays below Slack's 50 block limit
const MaxDigestPhotos = 20

// BuildWeeklyDigestBlocks creates the message blocks for a weekly carousel digest
func BuildWeeklyDigestBlocks(carousel *model.WeeklyCarousel) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("🛁 Bath photos of %s", carousel.Label), true, false),
		),
	}

	if carousel.IsEmpty() {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "No approved photos this week.", false, false),
			nil,
			nil,
		))
		return blocks
	}

	for i, record := range carousel.BathRecords {
		if i >= MaxDigestPhotos {
			break
		}

		title := record.PetName
		if record.Caption != "" {
			title = fmt.Sprintf("%s: %s", record.PetName, record.Caption)
		}
		blocks = append(blocks, slack.NewImageBlock(
			record.PhotoURL,
			fmt.Sprintf("%s after the bath on %s", record.PetName, model.FormatDate(record.BathDate())),
			fmt.Sprintf("bath_%s", record.ID),
			slack.NewTextBlockObject(slack.PlainTextType, title, false, false),
		))
	}

	summary := fmt.Sprintf("*Week:* %s to %s  |  *Photos:* %d",
		model.FormatDate(carousel.WeekStart),
		model.FormatDate(carousel.WeekEnd),
		len(carousel.BathRecords))
	if hidden := len(carousel.BathRecords) - MaxDigestPhotos; hidden > 0 {
		summary += fmt.Sprintf("  |  %d more on the site", hidden)
	}
	blocks = append(blocks, slack.NewContextBlock(
		"",
		slack.NewTextBlockObject(slack.MarkdownType, summary, false, false),
	))

	return blocks
}

// DigestFallbackText is shown in notifications and by clients that cannot render blocks
func DigestFallbackText(carousel *model.WeeklyCarousel) string {
	if carousel.IsEmpty() {
		return fmt.Sprintf("No bath photos for %s", carousel.Label)
	}
	return fmt.Sprintf("%d bath photos for %s", len(carousel.BathRecords), carousel.Label)
}
