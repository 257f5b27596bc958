package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidBBox = New(
		"INVALID_BBOX",
		"Invalid bounding box",
		http.StatusBadRequest,
	)

	ErrInvalidPlaceType = New(
		"INVALID_PLACE_TYPE",
		"Invalid place type",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDataSourceNotFound = New(
		"DATA_SOURCE_NOT_FOUND",
		"Data source not found",
		http.StatusNotFound,
	)

	ErrDataProcessing = New(
		"DATA_PROCESSING_ERROR",
		"Data processing error",
		http.StatusInternalServerError,
	)

	ErrGeocodingUnavailable = New(
		"GEOCODING_UNAVAILABLE",
		"Geocoding service unavailable",
		http.StatusBadGateway,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
