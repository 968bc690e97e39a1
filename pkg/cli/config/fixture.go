package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/interfaces"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
)

// BathRecordFixture is one entry of an import file. The week start is never
// read from the file; it is derived from bath_date on import.
type BathRecordFixture struct {
	PetName      string `yaml:"pet_name"`
	PhotoURL     string `yaml:"photo_url"`
	Caption      string `yaml:"caption"`
	BathDate     string `yaml:"bath_date"`
	DisplayOrder int    `yaml:"display_order"`
	Approved     bool   `yaml:"approved"`
}

type bathRecordFixtureFile struct {
	BathRecords []BathRecordFixture `yaml:"bath_records"`
}

// LoadBathRecordFixtures loads bath records to import from a YAML file
func LoadBathRecordFixtures(path string) ([]interfaces.BathRecordInput, error) {
	if path == "" {
		return nil, goerr.New("fixture file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "fixture file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read fixture file",
			goerr.V("path", path))
	}

	var file bathRecordFixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML fixture",
			goerr.V("path", path))
	}

	inputs := make([]interfaces.BathRecordInput, 0, len(file.BathRecords))
	for i, f := range file.BathRecords {
		// yaml.v3 keeps the raw text of an unquoted date for a string field
		bathDate, err := model.ParseDate(f.BathDate)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid bath_date in fixture",
				goerr.V("path", path),
				goerr.V("index", i),
				goerr.V("bathDate", f.BathDate))
		}

		inputs = append(inputs, interfaces.BathRecordInput{
			PetName:      f.PetName,
			PhotoURL:     f.PhotoURL,
			Caption:      f.Caption,
			BathDate:     bathDate,
			DisplayOrder: f.DisplayOrder,
			Approved:     f.Approved,
		})
	}

	return inputs, nil
}
