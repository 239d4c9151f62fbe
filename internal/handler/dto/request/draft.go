package request

import (
	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/submission"
)

type SetPeopleRequest struct {
	NumberOfPeople int `json:"numberOfPeople" binding:"required,min=1,max=50"`
}

type SetConsoleRequest struct {
	Console string `json:"console" binding:"required,max=32"`
}

type SetRoomRequest struct {
	RoomID string `json:"roomId" binding:"required"`
}

type SetUnitRequest struct {
	UnitID string `json:"unitId" binding:"required"`
}

type SelectGameRequest struct {
	GameID string `json:"gameId" binding:"required"`
	Name   string `json:"name" binding:"omitempty,max=200"`
}

func (r *SelectGameRequest) ToDomain() draft.Game {
	return draft.Game{ID: r.GameID, Name: r.Name}
}

type SetDateRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

func (r *SetDateRequest) ToDomain() (calendar.Date, error) {
	return calendar.ParseDate(r.Date)
}

type SetStartTimeRequest struct {
	StartTime string `json:"startTime" binding:"required,datetime=15:04"`
}

func (r *SetStartTimeRequest) ToDomain() (calendar.TimeOfDay, error) {
	return calendar.ParseTimeOfDay(r.StartTime)
}

type SetDurationRequest struct {
	Duration int `json:"duration" binding:"required,min=1,max=24"`
}

type SetNotesRequest struct {
	Notes string `json:"notes" binding:"max=1000"`
}

type GoToStepRequest struct {
	Step int `json:"step" binding:"required,min=1,max=4"`
}

// UpsertFnbRequest with a quantity of zero removes the item.
type UpsertFnbRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0,max=99"`
}

type ApplyPromoRequest struct {
	Code string `json:"code" binding:"required,max=32"`
}

type ApplyRewardRequest struct {
	UserRewardID string `json:"userRewardId" binding:"required"`
}

type CustomerRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"required,max=20"`
}

type SubmitRequest struct {
	Customer *CustomerRequest `json:"customer" binding:"omitempty"`
}

func (r *SubmitRequest) ToDomain() *submission.Customer {
	if r == nil || r.Customer == nil {
		return nil
	}
	return &submission.Customer{Name: r.Customer.Name, Email: r.Customer.Email, Phone: r.Customer.Phone}
}
