package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// BathRecordID represents a bath record identifier
type BathRecordID string

// String returns the string representation
func (id BathRecordID) String() string {
	return string(id)
}

// Validate checks if the bath record ID is a UUID
func (id BathRecordID) Validate() error {
	if id == "" {
		return goerr.New("bath record ID is empty")
	}
	if _, err := uuid.Parse(string(id)); err != nil {
		return goerr.Wrap(err, "bath record ID is not a UUID", goerr.V("id", id))
	}
	return nil
}

// NewBathRecordID creates a new BathRecordID using UUID v7 so IDs sort by creation
func NewBathRecordID() BathRecordID {
	id, err := uuid.NewV7()
	if err != nil {
		return BathRecordID(uuid.New().String())
	}
	return BathRecordID(id.String())
}

// SlackChannelID represents a Slack channel identifier
type SlackChannelID string

// String returns the string representation
func (id SlackChannelID) String() string {
	return string(id)
}
