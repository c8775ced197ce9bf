package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"printdrop/internal/core/domain/model/document"
	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/pkg/errs"
	"printdrop/internal/pkg/guard"
)

// MaxFilesPerUpload caps a single upload request.
const MaxFilesPerUpload = 5

var ErrUploadDocumentsCommandIsNotConstructed = errors.New(
	"UploadDocumentsCommand must be created via NewUploadDocumentsCommand constructor",
)

// UploadedFile is one file of a multipart upload, already read into memory.
type UploadedFile struct {
	Name string
	Data []byte
}

// UploadDocumentsCommand stores 1 to MaxFilesPerUpload files that share one
// set of print options.
type UploadDocumentsCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	files   []UploadedFile
	options document.PrintOptions

	guard guard.ConstructorGuard
}

func NewUploadDocumentsCommand(
	actor user.Actor,
	files []UploadedFile,
	options document.PrintOptions,
) (UploadDocumentsCommand, error) {
	var errList []error
	if err := actor.Validate(); err != nil {
		errList = append(errList, err)
	}

	switch {
	case len(files) == 0:
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("documents", errors.New("no files uploaded")))
	case len(files) > MaxFilesPerUpload:
		errList = append(errList, errs.NewValueIsOutOfRangeError("documents", len(files), 1, MaxFilesPerUpload))
	}

	for i, f := range files {
		if len(f.Data) == 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"documents", fmt.Errorf("file %d is empty", i+1)))
		}
		files[i].Name = cleanFileName(f.Name, i)
	}

	if err := errors.Join(errList...); err != nil {
		return UploadDocumentsCommand{}, err
	}

	return UploadDocumentsCommand{
		actor:   actor,
		files:   files,
		options: options,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UploadDocumentsCommand) Validate() error {
	return c.guard.Validate(ErrUploadDocumentsCommandIsNotConstructed)
}

func (c UploadDocumentsCommand) Actor() user.Actor {
	return c.actor
}

func (c UploadDocumentsCommand) Files() []UploadedFile {
	return c.files
}

func (c UploadDocumentsCommand) Options() document.PrintOptions {
	return c.options
}

func cleanFileName(name string, index int) string {
	name = filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return fmt.Sprintf("document-%d", index+1)
	}
	return name
}
