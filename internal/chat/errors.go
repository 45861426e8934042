package chat

import "errors"

var (
	ErrEmptyMessage    = errors.New("empty message")
	ErrNoSettingChange = errors.New("no setting to update")
)
