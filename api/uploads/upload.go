package uploads

import (
	"ecomshop_server/handling"
	"ecomshop_server/services"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleUpload handles POST /api/upload with a single "image" form file.
func (urm *UploadRoutesManager) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(urm.cfg.Upload.MaxFileSize); err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid multipart form"), gecho.Send())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("An image file is required"), gecho.Send())
		return
	}
	defer file.Close()

	input, err := readUploadInput(file, header)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Failed to read uploaded file"), gecho.Send())
		return
	}

	result, err := urm.uploadService.Upload(r.Context(), input.Filename, input.ContentType, input.Data)
	if err != nil {
		handling.HandleError(err, "Failed to upload image", urm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

// HandleMultiUpload handles POST /api/upload/multiple with repeated
// "images" form files. Failures are reported per file.
func (urm *UploadRoutesManager) HandleMultiUpload(w http.ResponseWriter, r *http.Request) {
	maxMemory := urm.cfg.Upload.MaxFileSize * int64(urm.cfg.Upload.MaxFiles)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid multipart form"), gecho.Send())
		return
	}

	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 {
		gecho.BadRequest(w, gecho.WithMessage("At least one image file is required"), gecho.Send())
		return
	}

	inputs := make([]services.UploadInput, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			gecho.BadRequest(w, gecho.WithMessage("Failed to read uploaded file"), gecho.Send())
			return
		}

		input, err := readUploadInput(file, header)
		file.Close()
		if err != nil {
			gecho.BadRequest(w, gecho.WithMessage("Failed to read uploaded file"), gecho.Send())
			return
		}
		inputs = append(inputs, input)
	}

	results, err := urm.uploadService.UploadMany(r.Context(), inputs)
	if err != nil {
		handling.HandleError(err, "Failed to upload images", urm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"results": results,
			"count":   len(results),
		}),
		gecho.Send(),
	)
}

func readUploadInput(file multipart.File, header *multipart.FileHeader) (services.UploadInput, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return services.UploadInput{}, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return services.UploadInput{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
