package dtos

import (
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/validate"
)

// SubscribeMessageDto subscribes a client to the state of the job whose ID
// is the subject.
type SubscribeMessageDto struct {
	Subject string `json:"subject"`
}

type StateMessageDto struct {
	Job          string     `json:"job"`
	IsRefreshing bool       `json:"isRefreshing"`
	LastRefresh  *time.Time `json:"lastRefresh"`
	NextRefresh  *time.Time `json:"nextRefresh"`
}

func (dto SubscribeMessageDto) Topic() string {
	return dto.Subject
}

func (dto SubscribeMessageDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "subject", dto.Subject, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}
