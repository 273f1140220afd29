package handler

import (
	"net/http"
	"medistay/config"
	"medistay/di"
	"medistay/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service, err := di.InitializeService()
	if err != nil {
		http.Error(w, "service initialization failed", http.StatusInternalServerError)

		return
	}

	service.Adaptor()(w, r)
}
