package rest

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/geostreams/records"
	"github.com/geostreams/records/internal/domain"
	"github.com/geostreams/records/internal/present/rest/presenter"
	"github.com/geostreams/records/internal/usecase"
)

// BasePath is the root of the Records API.
const BasePath = "ogc/records"

type Handler struct {
	records    *usecase.RecordsUsecase
	formats    *records.FormatRegistry
	decorators []records.CollectionDecorator
}

func NewHandler(uc *usecase.RecordsUsecase, formats *records.FormatRegistry, decorators ...records.CollectionDecorator) *Handler {
	return &Handler{
		records:    uc,
		formats:    formats,
		decorators: decorators,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/"+BasePath, h.handleLandingPage)
	e.GET("/"+BasePath+"/", h.handleLandingPage)
	e.GET("/"+BasePath+"/api", h.handleAPI)
	e.GET("/"+BasePath+"/conformance", h.handleConformance)
	e.GET("/"+BasePath+"/collections", h.handleCollections)
	e.GET("/"+BasePath+"/collections/", h.handleCollections)
	e.GET("/"+BasePath+"/collections/:collectionId", h.handleCollection)
}

func (h *Handler) handleLandingPage(c echo.Context) error {
	req, err := h.apiRequest(c, records.KindDocument)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	return h.respond(c, req, h.records.LandingPage(req))
}

func (h *Handler) handleAPI(c echo.Context) error {
	req, err := h.apiRequest(c, records.KindAPI)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	api, err := h.records.API(req)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return h.respond(c, req, api)
}

func (h *Handler) handleConformance(c echo.Context) error {
	req, err := h.apiRequest(c, records.KindDocument)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	return h.respond(c, req, h.records.Conformance(req))
}

func (h *Handler) handleCollections(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := h.apiRequest(c, records.KindDocument)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	doc, err := h.records.Collections(ctx, req, h.decorators...)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return h.respond(c, req, doc)
}

func (h *Handler) handleCollection(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := h.apiRequest(c, records.KindDocument)
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	doc, err := h.records.Collection(ctx, req, c.Param("collectionId"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidParameter) {
			return presenter.BadRequest(c, err)
		}
		return presenter.InternalError(c, err)
	}
	return h.respond(c, req, doc)
}
