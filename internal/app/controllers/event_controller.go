package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/services"
	"github.com/hayat/parivartan/internal/middleware"
)

// EventController handles event operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// GetEvents lists events
// @Summary List events
// @Description Returns events split into upcoming and past relative to the request time. Upcoming events are ordered soonest first, past events most recent first.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse} "Events retrieved successfully"
// @Router /events [get]
func (c *EventController) GetEvents(ctx *gin.Context) {
	items := c.eventService.GetEvents()
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, "Events retrieved successfully"))
}

// CreateEvent adds an event
// @Summary Create an event
// @Description Adds an event and emits a notification to everyone. Members and admins only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse} "Event created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, role := middleware.CurrentActor(ctx)
	item, err := c.eventService.CreateEvent(userID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item, "Event created"))
}

// UpdateEvent edits an event
// @Summary Update an event
// @Description Merges the provided fields into the event. Only the author or an admin may edit. A date change can move the event between the upcoming and past groups. Updating a missing id succeeds without effect.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse "Event updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, role := middleware.CurrentActor(ctx)
	if err := c.eventService.UpdateEvent(userID, role, ctx.Param("id"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Event updated"))
}

// DeleteEvent removes an event
// @Summary Delete an event
// @Description Removes an event. Only the author or an admin may delete. Requires confirm=true. Deleting a missing id succeeds without effect.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param confirm query bool true "Must be true to confirm the deletion"
// @Success 200 {object} dto.APIResponse "Event deleted"
// @Failure 400 {object} dto.ErrorResponse "Missing confirmation"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	userID, role := middleware.CurrentActor(ctx)
	confirmed := ctx.Query("confirm") == "true"

	if err := c.eventService.DeleteEvent(userID, role, ctx.Param("id"), confirmed); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Event deleted"))
}
