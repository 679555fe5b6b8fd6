package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/ttpr0/landmark-routing/store"
)

//**********************************************************
// router
//**********************************************************

// NewRouter wires the dataset and routing endpoints onto a chi router.
func NewRouter(config Config, manager *RoutingManager, metrics *Metrics) http.Handler {
	app := chi.NewRouter()
	app.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", REQUEST_ID_HEADER},
		ExposedHeaders: []string{REQUEST_ID_HEADER},
		MaxAge:         300,
	}))
	app.Use(RequestID)

	app.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		WriteResponse(w, HealthResponse{Status: "ok"}, http.StatusOK)
	})
	app.Method(http.MethodGet, "/metrics", metrics.Handler())

	app.Post("/upload", HandleUpload(config, manager, metrics))
	MapGet(app, "/api/landmarks/{filename}", HandleLandmarksRequest(manager))
	MapPost(app, "/api/route/{filename}", HandleRouteRequest(manager, metrics))
	MapGet(app, "/api/reachable/{filename}", HandleReachableRequest(manager))

	if config.Server.StaticDir != "" {
		app.Handle("/*", http.FileServer(http.Dir(config.Server.StaticDir)))
	}
	return app
}

//**********************************************************
// dataset handlers
//**********************************************************

func HandleUpload(config Config, manager *RoutingManager, metrics *Metrics) http.HandlerFunc {
	const path = "/upload"
	return func(w http.ResponseWriter, r *http.Request) {
		RequestLogger(r).Info("POST " + r.URL.Path)
		res := _Upload(w, r, config, manager)
		metrics.Uploads.WithLabelValues(Outcome(res)).Inc()
		_WriteResult(w, r, path, res)
	}
}

func _Upload(w http.ResponseWriter, r *http.Request, config Config, manager *RoutingManager) Result {
	r.Body = http.MaxBytesReader(w, r.Body, config.Server.MaxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		var too_large *http.MaxBytesError
		if errors.As(err, &too_large) {
			return Result{result: "File too large", status: http.StatusRequestEntityTooLarge}
		}
		return BadRequest("No file provided")
	}
	defer file.Close()

	if header.Filename == "" {
		return BadRequest("No file selected")
	}
	filename := store.SecureFilename(header.Filename)
	if filename == "" || !store.AllowedFile(filename) {
		return BadRequest("Invalid file type")
	}
	if err := manager.SaveDataset(filename, file); err != nil {
		return ErrorResult(err)
	}
	return OK(UploadResponse{
		Filename: filename,
		Message:  "File uploaded successfully",
	})
}

func HandleLandmarksRequest(manager *RoutingManager) func(*http.Request, LandmarksRequest) Result {
	return func(r *http.Request, req LandmarksRequest) Result {
		filename := chi.URLParam(r, "filename")
		landmarks, err := manager.GetLandmarks(filename)
		if err != nil {
			return ErrorResult(err)
		}
		if req.Coordinates {
			return OK(landmarks)
		}
		names := make([]string, 0, len(landmarks))
		for _, landmark := range landmarks {
			names = append(names, landmark.Name)
		}
		return OK(names)
	}
}

//**********************************************************
// routing handlers
//**********************************************************

func HandleRouteRequest(manager *RoutingManager, metrics *Metrics) func(*http.Request, RouteRequest) Result {
	return func(r *http.Request, req RouteRequest) Result {
		filename := chi.URLParam(r, "filename")
		start := _LowerName(req.Start)
		end := _LowerName(req.End)

		var res Result
		resp, err := manager.Route(filename, start, end)
		if err != nil {
			res = ErrorResult(err)
		} else {
			res = OK(resp)
		}
		metrics.RouteRequests.WithLabelValues(Outcome(res)).Inc()
		return res
	}
}

func HandleReachableRequest(manager *RoutingManager) func(*http.Request, ReachableRequest) Result {
	return func(r *http.Request, req ReachableRequest) Result {
		filename := chi.URLParam(r, "filename")
		landmarks, err := manager.Reachable(filename, _LowerName(req.From), req.Range)
		if err != nil {
			return ErrorResult(err)
		}
		return OK(landmarks)
	}
}
