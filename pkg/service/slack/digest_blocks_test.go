package slack_test

import (
	"fmt"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/m-mizutani/gt"
	"github.com/slack-go/slack"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
	slackSvc "github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/service/slack"
)

func carouselWith(t *testing.T, pets ...string) *model.WeeklyCarousel {
	t.Helper()
	weekStart := civil.Date{Year: 2025, Month: 9, Day: 8}

	records := make([]*model.BathRecord, 0, len(pets))
	for i, pet := range pets {
		record, err := model.NewBathRecord(pet, fmt.Sprintf("https://cdn.example.com/%s.jpg", pet), weekStart.AddDays(i%7))
		gt.NoError(t, err).Required()
		record.SetDisplayOrder(i)
		record.Approve()
		records = append(records, record)
	}
	return model.NewWeeklyCarousel(weekStart, records)
}

func TestBuildWeeklyDigestBlocks(t *testing.T) {
	t.Run("one image per photo between header and context", func(t *testing.T) {
		carousel := carouselWith(t, "Luna", "Max", "Bella")
		carousel.BathRecords[0].UpdateCaption("Lavender shampoo")

		blocks := slackSvc.BuildWeeklyDigestBlocks(carousel)
		gt.A(t, blocks).Length(5)

		header, ok := blocks[0].(*slack.HeaderBlock)
		gt.True(t, ok)
		gt.S(t, header.Text.Text).Contains("Sep 8-14")

		image, ok := blocks[1].(*slack.ImageBlock)
		gt.True(t, ok)
		gt.Equal(t, image.ImageURL, "https://cdn.example.com/Luna.jpg")
		gt.S(t, image.Title.Text).Contains("Lavender shampoo")
		gt.S(t, image.AltText).Contains("2025-09-08")

		ctxBlock, ok := blocks[4].(*slack.ContextBlock)
		gt.True(t, ok)
		gt.A(t, ctxBlock.ContextElements.Elements).Length(1)
	})

	t.Run("empty week has a notice instead of images", func(t *testing.T) {
		blocks := slackSvc.BuildWeeklyDigestBlocks(carouselWith(t))
		gt.A(t, blocks).Length(2)

		section, ok := blocks[1].(*slack.SectionBlock)
		gt.True(t, ok)
		gt.S(t, section.Text.Text).Contains("No approved photos")
	})

	t.Run("images are capped", func(t *testing.T) {
		pets := make([]string, slackSvc.MaxDigestPhotos+5)
		for i := range pets {
			pets[i] = fmt.Sprintf("pet%02d", i)
		}

		blocks := slackSvc.BuildWeeklyDigestBlocks(carouselWith(t, pets...))
		gt.A(t, blocks).Length(slackSvc.MaxDigestPhotos + 2)

		ctxBlock, ok := blocks[len(blocks)-1].(*slack.ContextBlock)
		gt.True(t, ok)
		text, ok := ctxBlock.ContextElements.Elements[0].(*slack.TextBlockObject)
		gt.True(t, ok)
		gt.S(t, text.Text).Contains("5 more")
	})
}

func TestDigestFallbackText(t *testing.T) {
	gt.Equal(t, slackSvc.DigestFallbackText(carouselWith(t)), "No bath photos for Sep 8-14")
	gt.Equal(t, slackSvc.DigestFallbackText(carouselWith(t, "Luna", "Max")), "2 bath photos for Sep 8-14")
}
