package server

//go:generate swag init -g internal/server/server.go -o docs/swagger

// @title DomainLens API
// @version 0.1
// @description Trust score and risk highlight reports for website signal bundles.
// @BasePath /
