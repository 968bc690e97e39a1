package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/cli"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	return cli.Run(context.Background(), append([]string{"petshop", "--log-level", "error"}, args...))
}

func TestCarouselCommand(t *testing.T) {
	t.Run("previous week on empty storage", func(t *testing.T) {
		gt.NoError(t, run(t, "carousel"))
	})

	t.Run("given week as JSON", func(t *testing.T) {
		gt.NoError(t, run(t, "carousel", "--week", "2025-09-08", "--json"))
	})

	t.Run("week must be a Monday", func(t *testing.T) {
		gt.Error(t, run(t, "carousel", "--week", "2025-09-10"))
	})

	t.Run("week must be a strict date", func(t *testing.T) {
		gt.Error(t, run(t, "carousel", "--week", "2025-9-8"))
	})

	t.Run("unknown time zone", func(t *testing.T) {
		gt.Error(t, run(t, "carousel", "--timezone", "Nowhere/Special"))
	})
}

func TestImportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(`
bath_records:
  - pet_name: Luna
    photo_url: https://cdn.example.com/luna.jpg
    bath_date: "2025-09-09"
    approved: true
  - pet_name: Max
    photo_url: https://cdn.example.com/max.jpg
    bath_date: "2025-09-14"
`), 0o600)).Required()

	gt.NoError(t, run(t, "import", "--file", path))

	t.Run("invalid record stops the import", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.yaml")
		gt.NoError(t, os.WriteFile(bad, []byte(`
bath_records:
  - pet_name: ""
    photo_url: https://cdn.example.com/nobody.jpg
    bath_date: "2025-09-09"
`), 0o600)).Required()

		gt.Error(t, run(t, "import", "--file", bad))
	})

	t.Run("file is required", func(t *testing.T) {
		gt.Error(t, run(t, "import"))
	})
}

func TestRepairCommand(t *testing.T) {
	gt.NoError(t, run(t, "repair", "--dry-run"))
	gt.NoError(t, run(t, "repair"))
}

func TestDigestCommandRequiresSlack(t *testing.T) {
	gt.Error(t, run(t, "digest"))
}

func TestInvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{"petshop", "--log-level", "loud", "repair"})
	gt.Error(t, err)
}
