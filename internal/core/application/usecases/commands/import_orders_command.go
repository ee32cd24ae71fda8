package commands

import (
	"errors"

	"shiporders/internal/pkg/guard"
)

var (
	ErrImportOrdersCommandIsNotConstructed = errors.New(
		"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
	)
	ErrFileIsRequired = errors.New("file content is required")
)

// ImportOrdersCommand represents a request to import orders from an uploaded
// spreadsheet export. It carries the raw file content; parsing and validation
// happen in the handler.
type ImportOrdersCommand struct { //nolint:recvcheck //using for validation
	file []byte

	guard guard.ConstructorGuard
}

// NewImportOrdersCommand creates a command from the uploaded file content.
// Returns an error when the content is empty.
func NewImportOrdersCommand(file []byte) (ImportOrdersCommand, error) {
	cmd := ImportOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setFile(file); err != nil {
		return ImportOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrImportOrdersCommandIsNotConstructed if validation fails.
func (c ImportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
}

// File returns the raw uploaded file content.
func (c ImportOrdersCommand) File() []byte {
	return c.file
}

func (c *ImportOrdersCommand) setFile(file []byte) error {
	if len(file) == 0 {
		return ErrFileIsRequired
	}

	c.file = file
	return nil
}
