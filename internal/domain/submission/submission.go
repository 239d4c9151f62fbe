package submission

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strings"
	"time"

	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/pkg/ptr"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingFields     = errors.New("missing required booking fields")
	ErrRewardTooSoon     = errors.New("reward booking starts too soon")
	ErrAlreadySubmitting = errors.New("a submission is already in progress")
	ErrFaulted           = errors.New("booking was accepted but could not be handed to payment")
)

const PaymentMethodCash = "cash"

type Mode string

const (
	ModeNormal Mode = "normal"
	ModeReward Mode = "reward"
	ModeOTS    Mode = "ots"
)

// SelectMode picks the request shape. A reward on the draft wins over staff context.
func SelectMode(snap draft.Snapshot, staff bool) Mode {
	switch {
	case snap.RewardInfo != nil && snap.RewardInfo.UserRewardID != "":
		return ModeReward
	case staff:
		return ModeOTS
	default:
		return ModeNormal
	}
}

// MissingFieldsError itemizes every required field that is absent.
type MissingFieldsError struct {
	Mode   Mode
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s booking is missing: %s", e.Mode, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone"`
}

type FnbLine struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type NormalBooking struct {
	Unit      string    `json:"unit"`
	Game      string    `json:"game"`
	Visitors  int       `json:"visitors"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Notes     string    `json:"notes,omitempty"`
	Fnbs      []FnbLine `json:"fnbs"`
	PromoCode string    `json:"promoCode,omitempty"`
	Customer  *Customer `json:"customer,omitempty"`
}

type RewardBooking struct {
	UserRewardID string    `json:"userRewardId"`
	Unit         string    `json:"unit"`
	Game         string    `json:"game"`
	Visitors     int       `json:"visitors"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Notes        string    `json:"notes,omitempty"`
	Customer     *Customer `json:"customer,omitempty"`
}

type OTSBooking struct {
	Unit          string    `json:"unit"`
	Game          string    `json:"game"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Visitors      int       `json:"visitors"`
	PaymentMethod string    `json:"paymentMethod"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Notes         string    `json:"notes,omitempty"`
	Fnbs          []FnbLine `json:"fnbs"`
}

// Request holds exactly one populated payload, selected by Mode.
type Request struct {
	Mode   Mode
	Normal *NormalBooking
	Reward *RewardBooking
	OTS    *OTSBooking
}

type Input struct {
	Draft          draft.Snapshot
	Staff          bool
	Customer       *Customer
	Location       *time.Location
	Now            time.Time
	RewardLeadTime time.Duration
}

// required-field matrices; names are reported through their json tags

type normalFields struct {
	Unit      string `json:"unit" validate:"required"`
	Game      string `json:"game" validate:"required"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	Duration  int    `json:"duration" validate:"gt=0"`
	Visitors  int    `json:"visitors" validate:"gt=0"`
}

type rewardFields struct {
	UserRewardID string `json:"userRewardId" validate:"required"`
	Unit         string `json:"unit" validate:"required"`
	Game         string `json:"game" validate:"required"`
	Visitors     int    `json:"visitors" validate:"gt=0"`
	StartTime    string `json:"startTime" validate:"required"`
	EndTime      string `json:"endTime" validate:"required"`
}

type otsFields struct {
	Unit          string `json:"unit" validate:"required"`
	Game          string `json:"game" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Visitors      int    `json:"visitors" validate:"gt=0"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	StartTime     string `json:"startTime" validate:"required"`
	EndTime       string `json:"endTime" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Assemble validates the draft for its mode and builds the payload. It never
// touches the network; every failure here is a client-side validation fault.
func Assemble(in Input) (Request, error) {
	snap := in.Draft
	mode := SelectMode(snap, in.Staff)
	loc := in.Location
	if loc == nil {
		loc = time.Local
	}

	var unitID, gameID string
	if snap.Unit != nil {
		unitID = snap.Unit.ID
	}
	if len(snap.SelectedGames) > 0 {
		gameID = snap.SelectedGames[0].ID
	}
	start, end, startAt := Materialize(snap, loc)

	switch mode {
	case ModeReward:
		fields := rewardFields{
			UserRewardID: snap.RewardInfo.UserRewardID,
			Unit:         unitID,
			Game:         gameID,
			Visitors:     snap.NumberOfPeople,
			StartTime:    start,
			EndTime:      end,
		}
		if err := check(mode, fields); err != nil {
			return Request{}, err
		}
		if startAt.Before(in.Now.Add(in.RewardLeadTime)) {
			return Request{}, ErrRewardTooSoon
		}
		return Request{Mode: mode, Reward: &RewardBooking{
			UserRewardID: fields.UserRewardID,
			Unit:         unitID,
			Game:         gameID,
			Visitors:     snap.NumberOfPeople,
			StartTime:    start,
			EndTime:      end,
			Notes:        snap.Notes,
			Customer:     in.Customer,
		}}, nil

	case ModeOTS:
		c := ptr.Deref(in.Customer, Customer{})
		fields := otsFields{
			Unit:          unitID,
			Game:          gameID,
			Name:          strings.TrimSpace(c.Name),
			Phone:         strings.TrimSpace(c.Phone),
			Visitors:      snap.NumberOfPeople,
			PaymentMethod: PaymentMethodCash,
			StartTime:     start,
			EndTime:       end,
		}
		if err := check(mode, fields); err != nil {
			return Request{}, err
		}
		return Request{Mode: mode, OTS: &OTSBooking{
			Unit:          unitID,
			Game:          gameID,
			Name:          fields.Name,
			Phone:         fields.Phone,
			Visitors:      snap.NumberOfPeople,
			PaymentMethod: PaymentMethodCash,
			StartTime:     start,
			EndTime:       end,
			Notes:         snap.Notes,
			Fnbs:          fnbLines(snap.FoodAndDrinks),
		}}, nil

	default:
		fields := normalFields{
			Unit:     unitID,
			Game:     gameID,
			Duration: snap.Duration,
			Visitors: snap.NumberOfPeople,
		}
		if snap.Date != nil {
			fields.Date = snap.Date.String()
		}
		if snap.StartTime != nil {
			fields.StartTime = snap.StartTime.String()
		}
		if err := check(mode, fields); err != nil {
			return Request{}, err
		}
		var code string
		if snap.Promo != nil {
			code = snap.Promo.Code
		}
		return Request{Mode: mode, Normal: &NormalBooking{
			Unit:      unitID,
			Game:      gameID,
			Visitors:  snap.NumberOfPeople,
			StartTime: start,
			EndTime:   end,
			Notes:     snap.Notes,
			Fnbs:      fnbLines(snap.FoodAndDrinks),
			PromoCode: code,
			Customer:  in.Customer,
		}}, nil
	}
}

// Materialize renders the booked interval as local wall-clock strings. Empty strings
// mean date, start time or duration is missing.
func Materialize(snap draft.Snapshot, loc *time.Location) (start, end string, startAt time.Time) {
	if snap.Date == nil || snap.StartTime == nil || snap.Duration <= 0 {
		return "", "", time.Time{}
	}
	startAt = calendar.At(*snap.Date, *snap.StartTime, loc)
	endAt := calendar.AtPlusHours(*snap.Date, *snap.StartTime, snap.Duration, loc)
	return startAt.Format(calendar.DateTimeLayout), endAt.Format(calendar.DateTimeLayout), startAt
}

func check(mode Mode, fields any) error {
	err := validate.Struct(fields)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return &MissingFieldsError{Mode: mode, Fields: missing}
}

func fnbLines(items []draft.FoodItem) []FnbLine {
	out := make([]FnbLine, 0, len(items))
	for _, it := range items {
		out = append(out, FnbLine{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	return out
}

// IsGatewayURL accepts only https URLs on an allow-listed gateway host.
func IsGatewayURL(raw string, hosts []string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return slices.ContainsFunc(hosts, func(h string) bool {
		return strings.EqualFold(strings.TrimSpace(h), host)
	})
}
