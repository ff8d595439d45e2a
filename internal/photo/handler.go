package photo

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/photoupload/service/internal/response"
)

// FormField is the multipart field that carries the photo.
const FormField = "photo"

// multipartOverhead is the slack on top of MaxFileSize allowed for boundaries and
// part headers before the body is cut off.
const multipartOverhead = 512 << 10

// Client-facing error messages.
const (
	msgNoFile       = "No photo file provided"
	msgTooLarge     = "File too large (max 5MB)"
	msgNotImage     = "Only image files are allowed"
	msgBadForm      = "Invalid multipart form"
	msgNoFilename   = "Filename is required"
	msgUploadFailed = "Upload failed: "
	msgDeleteFailed = "Delete failed: "
)

// Handler holds HTTP handlers for photo endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new photo Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type deleteData struct {
	Filename string `json:"filename" example:"1a2b3c4d_0011223344556677_1718000000000.png"`
}

// Upload godoc
//
//	@Summary		Upload photo
//	@Description	Store one image (max 5MB) under a generated unique filename and return its public URL.
//	@Tags			photos
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			photo	formData	file	true	"Image file"
//	@Success		200		{object}	response.Envelope{data=Upload}
//	@Failure		400		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, MaxFileSize+multipartOverhead)
	if err := r.ParseMultipartForm(MaxFileSize + multipartOverhead); err != nil {
		switch {
		case isBodyTooLarge(err):
			response.BadRequest(w, msgTooLarge)
		case errors.Is(err, http.ErrNotMultipart):
			response.BadRequest(w, msgNoFile)
		default:
			response.BadRequest(w, msgBadForm)
		}
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile(FormField)
	if err != nil {
		response.BadRequest(w, msgNoFile)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if header.Size > MaxFileSize {
		response.BadRequest(w, msgTooLarge)
		return
	}
	if !IsAcceptableImage(contentType, header.Size) {
		response.BadRequest(w, msgNotImage)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		logger.Error().Err(err).Msg("read uploaded photo")
		response.InternalError(w)
		return
	}
	if int64(len(data)) > MaxFileSize {
		response.BadRequest(w, msgTooLarge)
		return
	}

	upload, err := h.svc.Upload(r.Context(), header.Filename, contentType, data)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, msgUploadFailed+err.Error())
		return
	}

	response.OK(w, "Photo uploaded successfully", upload)
}

// Delete godoc
//
//	@Summary		Delete photo
//	@Description	Remove a stored photo by filename. Deleting an unknown filename also succeeds.
//	@Tags			photos
//	@Produce		json
//	@Param			filename	path		string	true	"Generated filename"
//	@Success		200			{object}	response.Envelope{data=deleteData}
//	@Failure		400			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/delete/{filename} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	filename := routeParam(r, "filename")
	if strings.TrimSpace(filename) == "" {
		response.BadRequest(w, msgNoFilename)
		return
	}

	if err := h.svc.Delete(r.Context(), filename); err != nil {
		response.Error(w, http.StatusInternalServerError, msgDeleteFailed+err.Error())
		return
	}

	response.OK(w, "Photo deleted successfully", deleteData{Filename: filename})
}

// routeParam returns the decoded value of a chi path parameter. chi matches on
// RawPath when it is set, so only then is the value still escaped.
func routeParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}
