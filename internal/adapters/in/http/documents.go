package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"printdrop/internal/core/application/usecases/commands"
	"printdrop/internal/core/application/usecases/queries"
	"printdrop/internal/core/domain/model/document"
	"printdrop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// MaxFileSize caps each uploaded file.
const MaxFileSize = 20 << 20

// UploadDocuments handles POST /api/v1/documents/upload. Files come in the
// multipart field "documents" and share the print options of the form.
func (s *Server) UploadDocuments(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("documents", err)
	}

	options, err := printOptionsFromForm(form.Value)
	if err != nil {
		return err
	}

	headers := form.File["documents"]
	if len(headers) > commands.MaxFilesPerUpload {
		return errs.NewValueIsOutOfRangeError("documents", len(headers), 1, commands.MaxFilesPerUpload)
	}
	files := make([]commands.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		data, readErr := readUpload(fh)
		if readErr != nil {
			return readErr
		}
		files = append(files, commands.UploadedFile{Name: fh.Filename, Data: data})
	}

	cmd, err := commands.NewUploadDocumentsCommand(actor, files, options)
	if err != nil {
		return err
	}
	docs, err := s.handlers.UploadDocuments.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, mapSlice(docs, documentResponse))
}

// ListMyDocuments handles GET /api/v1/documents/my.
func (s *Server) ListMyDocuments(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListMyDocumentsQuery(actor)
	if err != nil {
		return err
	}
	views, err := s.handlers.ListMyDocuments.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, documentViewResponse))
}

// GetMyDocument handles GET /api/v1/documents/my/:id.
func (s *Server) GetMyDocument(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	documentID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetMyDocumentQuery(actor, documentID)
	if err != nil {
		return err
	}
	view, err := s.handlers.GetMyDocument.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, documentViewResponse(view))
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > MaxFileSize {
		return nil, errs.NewValueIsOutOfRangeError("documents", fh.Size, 1, MaxFileSize)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxFileSize {
		return nil, errs.NewValueIsOutOfRangeError("documents", len(data), 1, MaxFileSize)
	}
	return data, nil
}

// printOptionsFromForm reads size, colorType, binding and copies. Missing
// values fall back to A4, black and white, no binding, one copy.
func printOptionsFromForm(values map[string][]string) (document.PrintOptions, error) {
	get := func(key string) string {
		if v := values[key]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}

	size, sizeErr := document.PaperSizeFromString(get("size"))
	color, colorErr := document.ColorModeFromString(get("colorType"))

	binding := false
	var bindingErr error
	if raw := get("binding"); raw != "" {
		binding, bindingErr = strconv.ParseBool(raw)
		if bindingErr != nil {
			bindingErr = errs.NewValueIsInvalidErrorWithCause("binding", fmt.Errorf("%q is not a boolean", raw))
		}
	}

	copies := 1
	var copiesErr error
	if raw := get("copies"); raw != "" {
		copies, copiesErr = strconv.Atoi(raw)
		if copiesErr != nil {
			copiesErr = errs.NewValueIsInvalidErrorWithCause("copies", fmt.Errorf("%q is not a number", raw))
		}
	}

	if err := errors.Join(sizeErr, colorErr, bindingErr, copiesErr); err != nil {
		return document.PrintOptions{}, err
	}
	return document.NewPrintOptions(size, color, binding, copies)
}
