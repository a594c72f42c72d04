package logging

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		log.Infof("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(w, req.WithContext(ContextWithLogData(req.Context(), logData)), logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// HumaMiddleware gives every huma operation its own LogData and logs the
// outcome under the operation ID.
func HumaMiddleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		loggingName := "unknown"
		if op := ctx.Operation(); op != nil {
			loggingName = op.OperationID
		}

		logData := NewLogData(log)
		log.Infof("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		next(huma.WithContext(ctx, ContextWithLogData(ctx.Context(), logData)))
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)
		if status >= http.StatusInternalServerError {
			logData.Log().Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}
