package store

import "errors"

var (
	ErrBuildingSQLQuery      = errors.New("error building sql query")
	ErrExecutingQuery        = errors.New("error executing query")
	ErrScanningRow           = errors.New("error scanning row")
	ErrEncodingRequest       = errors.New("error encoding stored request")
	ErrDecodingRequest       = errors.New("error decoding stored request")
	ErrStoredRequestNotSaved = errors.New("stored request not saved")
)
