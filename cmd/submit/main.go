package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"tenine/internal/modules/draft"
	"tenine/internal/modules/form"
	"tenine/internal/modules/relay"
)

// submit validates a reservation form from the command line, saves the draft,
// and forwards it to the reservations endpoint.
func main() {
	_ = godotenv.Load()

	var (
		endpoint = flag.String("endpoint", "http://localhost:8080/api/reservations", "reservation endpoint URL")
		dir      = flag.String("dir", ".", "directory holding the pending draft file")

		name     = flag.String("name", "", "customer name")
		email    = flag.String("email", "", "customer email")
		gender   = flag.String("gender", "", "gender code (female, male)")
		date     = flag.String("date", "", "reservation date, YYYY-MM-DD")
		period   = flag.String("period", "오후", "clock period (오전 or 오후)")
		hour     = flag.String("hour", "", "hour on the 12-hour clock")
		minute   = flag.String("minute", "", "minute")
		location = flag.String("location", "", "branch code")
		purpose  = flag.String("purpose", "", "visit purpose code")
		message  = flag.String("message", "", "optional request message")

		addEyes    = flag.Bool("eyes", false, "add the eye makeup option")
		addShading = flag.Bool("shading", false, "add the shading option")
		agree      = flag.Bool("agree", false, "accept the terms and privacy policy")
	)
	flag.Parse()

	in := &form.Input{
		Name:       *name,
		Email:      *email,
		Gender:     *gender,
		Date:       *date,
		TimePeriod: *period,
		TimeHour:   *hour,
		TimeMinute: *minute,
		Location:   *location,
		Purpose:    *purpose,
		Message:    *message,
		AddEyes:    *addEyes,
		AddShading: *addShading,
		AgreeAll:   *agree,
	}

	if err := form.Validate(in); err != nil {
		log.Fatal(err)
	}

	store := draft.NewFileStore(*dir)
	if err := store.Save(form.BuildDraft(in)); err != nil {
		log.Fatal(err)
	}

	r := relay.New(store, *endpoint, nil, stdoutNotifier{}, exitNavigator{})
	if err := r.Run(context.Background()); err != nil {
		os.Exit(1)
	}
}

type stdoutNotifier struct{}

func (stdoutNotifier) Notify(message string) {
	fmt.Println(message)
}

type exitNavigator struct{}

func (exitNavigator) Home()       {}
func (exitNavigator) BackToForm() {}
