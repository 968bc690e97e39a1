package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"cloud.google.com/go/civil"
	"github.com/urfave/cli/v3"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/cli/config"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
)

func cmdCarousel() *cli.Command {
	var (
		storageCfg config.Storage
		clockCfg   config.Clock
		week       string
		asJSON     bool
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "week",
				Usage:       "Monday of the week to show (YYYY-MM-DD); the last completed week if unset",
				Destination: &week,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Print JSON instead of text",
				Destination: &asJSON,
			},
		},
		storageCfg.Flags(),
		clockCfg.Flags(),
	)

	return &cli.Command{
		Name:  "carousel",
		Usage: "Print the approved bath photos of a week in display order",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			bathRecordUC, repo, err := openBathRecord(ctx, &storageCfg, &clockCfg)
			if err != nil {
				return err
			}
			defer repo.Close()

			var carousel *model.WeeklyCarousel
			if week == "" {
				carousel, err = bathRecordUC.SelectPreviousWeek(ctx)
			} else {
				var weekStart civil.Date
				weekStart, err = model.ParseDate(week)
				if err != nil {
					return err
				}
				var records []*model.BathRecord
				records, err = bathRecordUC.SelectForWeek(ctx, weekStart)
				carousel = model.NewWeeklyCarousel(weekStart, records)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return printCarouselJSON(c.Root().Writer, carousel)
			}
			printCarousel(c.Root().Writer, carousel)
			return nil
		},
	}
}

func printCarousel(w io.Writer, carousel *model.WeeklyCarousel) {
	fmt.Fprintf(w, "Week of %s (%s to %s)\n",
		carousel.Label,
		model.FormatDate(carousel.WeekStart),
		model.FormatDate(carousel.WeekEnd))

	if carousel.IsEmpty() {
		fmt.Fprintln(w, "  no approved photos")
		return
	}

	for i, r := range carousel.BathRecords {
		fmt.Fprintf(w, "%3d. %-20s %s  order=%d  %s\n",
			i+1, r.PetName, model.FormatDate(r.BathDate()), r.DisplayOrder, r.PhotoURL)
	}
}

type carouselEntry struct {
	ID           string `json:"id"`
	PetName      string `json:"pet_name"`
	PhotoURL     string `json:"photo_url"`
	Caption      string `json:"caption,omitempty"`
	BathDate     string `json:"bath_date"`
	DisplayOrder int    `json:"display_order"`
}

func printCarouselJSON(w io.Writer, carousel *model.WeeklyCarousel) error {
	entries := make([]carouselEntry, 0, len(carousel.BathRecords))
	for _, r := range carousel.BathRecords {
		entries = append(entries, carouselEntry{
			ID:           r.ID.String(),
			PetName:      r.PetName,
			PhotoURL:     r.PhotoURL,
			Caption:      r.Caption,
			BathDate:     model.FormatDate(r.BathDate()),
			DisplayOrder: r.DisplayOrder,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{
		"week_start":   model.FormatDate(carousel.WeekStart),
		"week_end":     model.FormatDate(carousel.WeekEnd),
		"label":        carousel.Label,
		"bath_records": entries,
	})
}
