package handler

import (
	"net/http"
	"strconv"

	domainerrors "echofinds/internal/domain/errors"
	"echofinds/internal/errors"
	"echofinds/internal/usecase"

	"github.com/labstack/echo/v4"
)

// pathID parses a numeric :id path parameter. Anything that is not a
// positive integer reads as a missing resource.
func pathID(c echo.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || value == 0 {
		return 0, domainerrors.ErrNotFound
	}

	return uint(value), nil
}

// formImage extracts the optional multipart image from the first of the
// given fields that carries a file. The caller must invoke the returned
// cleanup after the upload has been consumed.
func formImage(c echo.Context, fields ...string) (*usecase.ImageUpload, func(), error) {
	noop := func() {}

	for _, field := range fields {
		fileHeader, err := c.FormFile(field)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
				continue
			}

			return nil, noop, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
		if fileHeader.Filename == "" {
			continue
		}

		src, err := fileHeader.Open()
		if err != nil {
			return nil, noop, errors.Wrap(err, "failed to open uploaded file")
		}

		upload := &usecase.ImageUpload{
			Filename: fileHeader.Filename,
			Content:  src,
		}

		return upload, func() { _ = src.Close() }, nil
	}

	return nil, noop, nil
}
