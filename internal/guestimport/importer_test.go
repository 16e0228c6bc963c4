package guestimport_test

import (
	"errors"
	"testing"

	"github.com/lineup-rsvp/lineup/internal/guestimport"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

type guestsFake struct {
	names   map[string]bool
	created int
}

func (g *guestsFake) Create(guest *model.Guest) error {
	if g.names[guest.FullName] {
		return model.ErrConflict
	}
	if guest.FullName == "Broken" {
		return errors.New("disk full")
	}
	g.names[guest.FullName] = true
	g.created++
	guest.ID = guest.FullName
	return nil
}

type invitationsFake struct {
	created []model.Invitation
}

func (i *invitationsFake) CreateMany(invitations []model.Invitation) error {
	i.created = append(i.created, invitations...)
	return nil
}

var events = []guestimport.EventRef{
	{Slug: "sangeet", ID: "e1"},
	{Slug: "reception", ID: "e2"},
}

func TestApply(t *testing.T) {
	guests := &guestsFake{names: map[string]bool{"Jane Smith": true}}
	invitations := &invitationsFake{}
	importer := guestimport.NewImporter(guests, invitations)

	result := importer.Apply("l1", []guestimport.Row{
		{GuestName: "John Doe", Email: "john@example.com", EventLimits: map[string]int{"sangeet": 2, "reception": -1, "unknown": 3}},
		{GuestName: "Jane Smith", EventLimits: map[string]int{"reception": 1}},
		{GuestName: "  "},
		{GuestName: "Broken"},
	}, events)

	if !result.Success {
		t.Error("Expected success when at least one row was imported")
	}
	if result.Count != 1 {
		t.Errorf("Expected 1 imported guest, got %d", result.Count)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("Expected 2 errors, got %v", result.Errors)
	}
	if result.Errors[0] != "Jane Smith: Guest with this name already exists" {
		t.Errorf("Wrong conflict message, got %s", result.Errors[0])
	}
	if result.Errors[1] != "Broken: disk full" {
		t.Errorf("Wrong error message, got %s", result.Errors[1])
	}
	if len(invitations.created) != 2 {
		t.Errorf("Expected 2 invitations, unknown slugs being ignored, got %d", len(invitations.created))
	}
	for _, invitation := range invitations.created {
		if !invitation.IsInvited || invitation.GuestID != "John Doe" {
			t.Errorf("Wrong invitation %+v", invitation)
		}
	}
}

func TestApplyFailsWhenNothingImported(t *testing.T) {
	guests := &guestsFake{names: map[string]bool{"Jane Smith": true}}
	importer := guestimport.NewImporter(guests, &invitationsFake{})

	result := importer.Apply("l1", []guestimport.Row{{GuestName: "Jane Smith"}}, events)

	if result.Success || result.Count != 0 {
		t.Errorf("Expected failure, got %+v", result)
	}
}

func TestApplyEmpty(t *testing.T) {
	importer := guestimport.NewImporter(&guestsFake{names: map[string]bool{}}, &invitationsFake{})

	result := importer.Apply("l1", nil, events)

	if !result.Success || result.Count != 0 {
		t.Errorf("Expected an empty successful import, got %+v", result)
	}
}

func TestApplyRejectsLimitsBelowUnlimited(t *testing.T) {
	guests := &guestsFake{names: map[string]bool{}}
	invitations := &invitationsFake{}
	importer := guestimport.NewImporter(guests, invitations)

	result := importer.Apply("l1", []guestimport.Row{
		{GuestName: "John Doe", EventLimits: map[string]int{"reception": -7}},
		{GuestName: "Jane Smith", EventLimits: map[string]int{"reception": -1, "unknown": -7}},
	}, events)

	if result.Count != 1 || guests.created != 1 {
		t.Errorf("Expected only Jane Smith to be imported, got %+v", result)
	}
	if len(result.Errors) != 1 || result.Errors[0] != "John Doe: invalid attendee limit" {
		t.Errorf("Wrong errors %v", result.Errors)
	}
	if len(invitations.created) != 1 || invitations.created[0].AttendeeLimit != model.Unlimited {
		t.Errorf("Unexpected invitations %+v", invitations.created)
	}
}
