package reservation

import (
	"context"
	"fmt"
	"log"
	"time"

	"tenine/internal/modules/notification"
)

// Service runs the submission flow: validate, persist, then notify. The
// datastore write always happens before any mail activity, and a mail
// failure does not roll it back.
type Service struct {
	repo    Repository
	mail    MailSender
	baseURL string
}

func NewService(repo Repository, mail MailSender, baseURL string) *Service {
	return &Service{
		repo:    repo,
		mail:    mail,
		baseURL: baseURL,
	}
}

// Create handles one submission. On ErrMailConfig the returned record is
// already persisted; any other error after persistence also leaves the
// record in place.
func (s *Service) Create(ctx context.Context, req *CreateReservationRequest) (*Reservation, error) {
	if req.Name == "" || req.Email == "" || req.Gender == "" || req.Date == "" ||
		req.Time == "" || req.Purpose == "" || req.Location == "" {
		return nil, ErrValidation
	}

	basePrice := numberOr(req.BasePrice, DefaultBasePrice)
	rec := &Reservation{
		Name:     req.Name,
		Email:    req.Email,
		Gender:   req.Gender,
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		Areas:    AreaList(req.Areas),
		Purpose:  req.Purpose,
		Message:  req.Message,
		Pricing: Pricing{
			BasePrice:    basePrice,
			AddOnPrice:   numberOr(req.AddOnPrice, DefaultAddOnPrice),
			TotalPrice:   numberOr(req.TotalPrice, basePrice),
			TotalMinutes: numberOr(req.TotalMinutes, DefaultTotalMinutes),
			AddEyes:      req.AddEyes,
			AddShading:   req.AddShading,
		},
		CreatedAt: time.Now(),
	}
	if req.TimeDetail != nil {
		rec.TimeDetailStart = req.TimeDetail.StartLabel
		rec.TimeDetailEnd = req.TimeDetail.EndLabel
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist reservation: %w", err)
	}

	if !s.mail.Configured() {
		log.Printf("reservation %d saved but mail credentials are missing", rec.ID)
		return rec, ErrMailConfig
	}

	customer, operator := notification.Compose(notification.Reservation{
		Name:         rec.Name,
		Email:        rec.Email,
		Gender:       rec.Gender,
		Date:         rec.Date,
		Time:         rec.Time,
		Location:     rec.Location,
		Purpose:      rec.Purpose,
		Message:      rec.Message,
		Areas:        rec.Areas,
		TotalPrice:   rec.Pricing.TotalPrice,
		TotalMinutes: rec.Pricing.TotalMinutes,
		TimeStart:    rec.TimeDetailStart,
		TimeEnd:      rec.TimeDetailEnd,
	}, s.baseURL)

	if err := s.mail.Send(ctx, customer); err != nil {
		return rec, fmt.Errorf("send customer mail: %w", err)
	}
	if err := s.mail.Send(ctx, operator); err != nil {
		return rec, fmt.Errorf("send operator mail: %w", err)
	}

	return rec, nil
}
