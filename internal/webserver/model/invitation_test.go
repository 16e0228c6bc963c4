package model_test

import (
	"reflect"
	"testing"

	"github.com/lineup-rsvp/lineup/internal/webserver/model"
)

func TestReconcile(t *testing.T) {
	current := []model.Invitation{
		{ID: "1", EventID: "ceremony", AttendeeLimit: 2},
		{ID: "2", EventID: "reception", AttendeeLimit: model.Unlimited},
		{ID: "3", EventID: "brunch", AttendeeLimit: 1},
	}

	var cases = []struct {
		name     string
		desired  []model.InvitationTarget
		expected model.Plan
	}{
		{
			"Nothing changes when targets match the invitations",
			[]model.InvitationTarget{
				{EventID: "ceremony", AttendeeLimit: 2},
				{EventID: "reception", AttendeeLimit: model.Unlimited},
				{EventID: "brunch", AttendeeLimit: 1},
			},
			model.Plan{},
		},
		{
			"Missing targets and zero limits delete invitations",
			[]model.InvitationTarget{
				{EventID: "ceremony", AttendeeLimit: 2},
				{EventID: "reception", AttendeeLimit: 0},
			},
			model.Plan{ToDelete: []model.Invitation{current[1], current[2]}},
		},
		{
			"New events are created and changed limits updated",
			[]model.InvitationTarget{
				{EventID: "ceremony", AttendeeLimit: 4},
				{EventID: "reception", AttendeeLimit: model.Unlimited},
				{EventID: "brunch", AttendeeLimit: 1},
				{EventID: "dinner", AttendeeLimit: 3},
			},
			model.Plan{
				ToCreate: []model.InvitationTarget{{EventID: "dinner", AttendeeLimit: 3}},
				ToUpdate: []model.InvitationTarget{{EventID: "ceremony", AttendeeLimit: 4}},
			},
		},
		{
			"The last target for an event wins",
			[]model.InvitationTarget{
				{EventID: "ceremony", AttendeeLimit: 5},
				{EventID: "reception", AttendeeLimit: model.Unlimited},
				{EventID: "brunch", AttendeeLimit: 1},
				{EventID: "ceremony", AttendeeLimit: 2},
			},
			model.Plan{},
		},
		{
			"No targets delete everything",
			nil,
			model.Plan{ToDelete: current},
		},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			plan := model.Reconcile(current, tcase.desired)
			if !reflect.DeepEqual(plan, tcase.expected) {
				t.Errorf("Wrong plan, expected %+v, got %+v", tcase.expected, plan)
			}
		})
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	desired := []model.InvitationTarget{
		{EventID: "ceremony", AttendeeLimit: 2},
		{EventID: "dinner", AttendeeLimit: 0},
		{EventID: "reception", AttendeeLimit: model.Unlimited},
	}

	plan := model.Reconcile(nil, desired)
	if len(plan.ToCreate) != 2 {
		t.Fatalf("Expected 2 invitations to be created, got %d", len(plan.ToCreate))
	}

	applied := make([]model.Invitation, len(plan.ToCreate))
	for i, target := range plan.ToCreate {
		applied[i] = model.Invitation{EventID: target.EventID, AttendeeLimit: target.AttendeeLimit, IsInvited: true}
	}

	if again := model.Reconcile(applied, desired); !again.Empty() {
		t.Errorf("Expected an empty plan, got %+v", again)
	}
}

func TestValidAttendeeCount(t *testing.T) {
	var cases = []struct {
		limit    int
		count    int
		expected bool
	}{
		{model.Unlimited, 1, true},
		{model.Unlimited, 150, true},
		{model.Unlimited, 0, false},
		{2, 2, true},
		{2, 3, false},
		{2, 0, false},
		{1, -1, false},
	}

	for _, tcase := range cases {
		if got := model.ValidAttendeeCount(tcase.limit, tcase.count); got != tcase.expected {
			t.Errorf("ValidAttendeeCount(%d, %d): expected %t, got %t", tcase.limit, tcase.count, tcase.expected, got)
		}
	}
}
