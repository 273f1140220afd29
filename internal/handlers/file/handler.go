package file

import (
	"net/http"

	"medistay/infras/otel"
	"medistay/internal/domains/file/model"
	"medistay/internal/domains/file/model/dto"
	"medistay/internal/domains/file/service"
	"medistay/shared/constant"
	gDto "medistay/shared/dto"
	"medistay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.File
	otel    otel.Otel
}

func New(service service.File, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/files", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadFile)
		routerGroup.Get("/", handler.GetFiles)
		routerGroup.Get("/{id}", handler.GetFileByID)
		routerGroup.Delete("/{id}", handler.DeleteFile)
	})
}

// UploadFile stores an uploaded image and returns its reference.
// @Summary Upload a file
// @Description Upload an image to object storage and register it.
// @Tags File
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 201 {object} response.Data[dto.FileResponse] "File uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/files [post]
// @Security BearerAuth
func (handler *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadFile")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadFileRequest{
		File:       fileHeader,
		FileReader: file,
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("File uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetFiles lists stored file references.
// @Summary Get all files
// @Description Retrieve stored file references with pagination.
// @Tags File
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param filename_download query string false "Filter by original filename"
// @Success 200 {object} response.Data[dto.GetFilesResponse] "Files"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/files [get]
// @Security BearerAuth
func (handler *Handler) GetFiles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFiles")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if filename := r.URL.Query().Get(model.FieldFilenameDownload); filename != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFilenameDownload,
			Operator: gDto.FilterOperatorLike,
			Value:    filename,
			Table:    model.TableName,
		})
	}

	files, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get files")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Files retrieved successfully")

	response.WithJSON(w, http.StatusOK, files)
}

// GetFileByID retrieves a file reference by its ID.
// @Summary Get a file by ID
// @Description Retrieve a stored file reference by its unique identifier.
// @Tags File
// @Accept json
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} response.Data[dto.FileResponse] "File details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/files/{id} [get]
func (handler *Handler) GetFileByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFileByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	file, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("File retrieved successfully")

	response.WithJSON(w, http.StatusOK, file)
}

// DeleteFile deletes a file reference and its stored object.
// @Summary Delete a file by ID
// @Description Delete a stored file and clean up the underlying object.
// @Tags File
// @Accept json
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} response.Message "File deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/files/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFile")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete file")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("File deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "File deleted successfully")
}
