package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *Input {
	return &Input{
		Name:       "Kim",
		Email:      "kim@x.com",
		Gender:     "female",
		Date:       "2024-05-01",
		TimePeriod: "오후",
		TimeHour:   "02",
		TimeMinute: "00",
		Location:   "gangnam-11",
		Purpose:    "daily",
		AgreeAll:   true,
	}
}

func TestValidate_FirstInvalidField(t *testing.T) {
	in := validInput()
	in.Name = ""
	in.Email = ""

	err := Validate(in)
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Name", fieldErr.Field, "the first invalid field wins")
}

func TestValidate_EmailFormat(t *testing.T) {
	in := validInput()
	in.Email = "not-an-email"

	err := Validate(in)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Email", fieldErr.Field)
}

func TestValidate_ConsentRequired(t *testing.T) {
	in := validInput()
	in.AgreeAll = false

	err := Validate(in)
	require.ErrorIs(t, err, ErrConsentRequired)
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, Validate(validInput()))
}

func TestBuildDraft_NoAddOns(t *testing.T) {
	d := BuildDraft(validInput())

	assert.Equal(t, 9900, d.TotalPrice)
	assert.Equal(t, 10, d.TotalMinutes)
	assert.Equal(t, []string{"compact"}, d.Areas)
	assert.Equal(t, "오후 02:00", d.Time)
	require.NotNil(t, d.TimeDetail)
	assert.Equal(t, "14:00", d.TimeDetail.StartLabel)
	assert.Equal(t, "14:10", d.TimeDetail.EndLabel)
}

func TestBuildDraft_WithEyes(t *testing.T) {
	in := validInput()
	in.AddEyes = true

	d := BuildDraft(in)

	assert.Equal(t, 14800, d.TotalPrice)
	assert.Equal(t, 15, d.TotalMinutes)
	assert.Equal(t, []string{"compact", "eyes"}, d.Areas)
	assert.True(t, d.AddEyes)
}

func TestBuildDraft_BothAddOns(t *testing.T) {
	in := validInput()
	in.AddEyes = true
	in.AddShading = true

	d := BuildDraft(in)

	assert.Equal(t, 19700, d.TotalPrice)
	assert.Equal(t, 20, d.TotalMinutes)
	assert.Equal(t, []string{"compact", "eyes", "shading"}, d.Areas)
}

func TestBuildDraft_EndTimeWrapsPastMidnight(t *testing.T) {
	in := validInput()
	in.TimeHour = "11"
	in.TimeMinute = "55"
	in.AddEyes = true
	in.AddShading = true // 20 minutes total

	d := BuildDraft(in)

	require.NotNil(t, d.TimeDetail)
	assert.Equal(t, "23:55", d.TimeDetail.StartLabel)
	assert.Equal(t, "00:15", d.TimeDetail.EndLabel)
}

func TestBuildDraft_TwelveAM(t *testing.T) {
	in := validInput()
	in.TimePeriod = "오전"
	in.TimeHour = "12"
	in.TimeMinute = "30"

	d := BuildDraft(in)

	require.NotNil(t, d.TimeDetail)
	assert.Equal(t, "00:30", d.TimeDetail.StartLabel)
	assert.Equal(t, "00:40", d.TimeDetail.EndLabel)
}

func TestBuildDraft_UnparsableTimeHasNoDetail(t *testing.T) {
	in := validInput()
	in.TimeHour = "??"

	d := BuildDraft(in)

	assert.Nil(t, d.TimeDetail)
	assert.Equal(t, "오후 ??:00", d.Time)
}
