package webserver_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"github.com/lineup-rsvp/lineup/internal/webserver/infrastructure"
	"github.com/lineup-rsvp/lineup/internal/webserver/model"
	"github.com/xuri/excelize/v2"
)

func TestGuestManagement(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db, &infrastructure.NoEmail{})

	cookie := register(t, app, "Jane", "jane@example.com", "secret-password")
	lineupID := createLineup(t, app, cookie, "Our Wedding")
	ceremony := createEvent(t, app, db, cookie, lineupID, "Ceremony", "2030-06-15")
	reception := createEvent(t, app, db, cookie, lineupID, "Reception", "2030-06-15")

	guest := createGuest(t, app, db, cookie, lineupID, "  Alice   Smith ", map[string]string{
		ceremony.ID:  "2",
		reception.ID: "-1",
	})

	t.Run("Guest names are normalized and invitations created", func(t *testing.T) {
		if guest.FullName != "Alice Smith" {
			t.Errorf("Expected name to be normalized, got '%s'", guest.FullName)
		}
		if len(guest.Invitations) != 2 {
			t.Fatalf("Expected 2 invitations, got %d", len(guest.Invitations))
		}
		if guest.InvitedTo(ceremony.ID) != 2 || guest.InvitedTo(reception.ID) != model.Unlimited {
			t.Errorf("Unexpected attendee limits %+v", guest.Invitations)
		}
	})

	t.Run("Names are unique inside a lineup", func(t *testing.T) {
		response, err := postRequest(app, fmt.Sprintf("/dashboard/%s/guests", lineupID), url.Values{
			"full-name": {"Alice Smith"},
		}, cookie)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusConflict, t)

		doc, err := goquery.NewDocumentFromReader(response.Body)
		if err != nil {
			t.Fatal(err)
		}
		if action, _ := doc.Find("#guest-form").Attr("action"); action != fmt.Sprintf("/dashboard/%s/guests", lineupID) {
			t.Errorf("Expected the form to keep creating a guest, got action %s", action)
		}
	})

	t.Run("Editing a guest reconciles their invitations", func(t *testing.T) {
		response, err := postRequest(app, fmt.Sprintf("/dashboard/%s/guests/%s/edit", lineupID, guest.ID), url.Values{
			"full-name":             {"Alice Smith"},
			"email":                 {"alice@example.com"},
			"limit-" + ceremony.ID:  {"4"},
			"limit-" + reception.ID: {"0"},
		}, cookie)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectTo(response, fmt.Sprintf("/dashboard/%s/guests", lineupID), t)

		var invitations []model.Invitation
		db.Where("guest_id = ?", guest.ID).Find(&invitations)
		if len(invitations) != 1 {
			t.Fatalf("Expected 1 invitation, got %d", len(invitations))
		}
		if invitations[0].EventID != ceremony.ID || invitations[0].AttendeeLimit != 4 {
			t.Errorf("Unexpected invitation %+v", invitations[0])
		}
	})

	t.Run("Invalid attendee limits are rejected", func(t *testing.T) {
		response, err := postRequest(app, fmt.Sprintf("/dashboard/%s/guests/%s/edit", lineupID, guest.ID), url.Values{
			"full-name":            {"Alice Smith"},
			"limit-" + ceremony.ID: {"-5"},
		}, cookie)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusBadRequest, t)
	})

	t.Run("The guest list can be searched", func(t *testing.T) {
		createGuest(t, app, db, cookie, lineupID, "Bob Jones", nil)

		response, err := getRequest(app, fmt.Sprintf("/dashboard/%s/guests?search=bob", lineupID), cookie)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusOK, t)

		doc, err := goquery.NewDocumentFromReader(response.Body)
		if err != nil {
			t.Fatal(err)
		}
		if doc.Find("tr.guest").Length() != 1 {
			t.Fatalf("Expected 1 guest, got %d", doc.Find("tr.guest").Length())
		}
		if name := doc.Find("tr.guest td.name").Text(); name != "Bob Jones" {
			t.Errorf("Expected Bob Jones, got %s", name)
		}
	})

	t.Run("The guest list and the template can be exported", func(t *testing.T) {
		for _, target := range []string{"export", "template"} {
			response, err := getRequest(app, fmt.Sprintf("/dashboard/%s/guests/%s", lineupID, target), cookie)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err.Error())
			}
			mustReturnStatus(response, http.StatusOK, t)
			if disposition := response.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(disposition, ".xlsx") {
				t.Errorf("Expected an xlsx attachment, got %s", disposition)
			}

			f, err := excelize.OpenReader(response.Body)
			if err != nil {
				t.Fatalf("Expected a valid workbook: %v", err)
			}
			f.Close()
		}
	})

	t.Run("Guests can be imported from a spreadsheet", func(t *testing.T) {
		f := excelize.NewFile()
		sheet := f.GetSheetName(0)
		f.SetSheetRow(sheet, "A1", &[]any{"Guest Name", "Email", "Ceremony", "Reception"})
		f.SetSheetRow(sheet, "A2", &[]any{"Carol White", "carol@example.com", 2, 0})
		f.SetSheetRow(sheet, "A3", &[]any{"Alice Smith", "", 1, 1})
		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			t.Fatal(err)
		}

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("file", "guests.xlsx")
		part.Write(buf.Bytes())
		writer.Close()

		req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/dashboard/%s/guests/import", lineupID), body)
		req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
		req.AddCookie(cookie)
		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, http.StatusOK, t)

		doc, err := goquery.NewDocumentFromReader(response.Body)
		if err != nil {
			t.Fatal(err)
		}
		if doc.Find("#import-result .import-errors li").Length() != 1 {
			t.Errorf("Expected the duplicated guest to be reported")
		}

		var carol model.Guest
		if err := db.Preload("Invitations").Where("full_name = ?", "Carol White").First(&carol).Error; err != nil {
			t.Fatal(err)
		}
		if len(carol.Invitations) != 1 || carol.InvitedTo(ceremony.ID) != 2 {
			t.Errorf("Unexpected invitations %+v", carol.Invitations)
		}
	})

	t.Run("Deleting a guest", func(t *testing.T) {
		response, err := postRequest(app, fmt.Sprintf("/dashboard/%s/guests/%s/delete", lineupID, guest.ID), url.Values{}, cookie)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustRedirectTo(response, fmt.Sprintf("/dashboard/%s/guests", lineupID), t)

		var total int64
		db.Model(&model.Invitation{}).Where("guest_id = ?", guest.ID).Count(&total)
		if total != 0 {
			t.Errorf("Expected invitations to be removed along with the guest, %d remain", total)
		}
	})
}

func TestGuestsAPI(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db, &infrastructure.NoEmail{})

	cookie := register(t, app, "Jane", "jane@example.com", "secret-password")
	otherCookie := register(t, app, "John", "john@example.com", "secret-password")
	lineupID := createLineup(t, app, cookie, "Our Wedding")
	ceremony := createEvent(t, app, db, cookie, lineupID, "Ceremony", "2030-06-15")

	payload := map[string]any{
		"lineupId": lineupID,
		"guests": []map[string]any{
			{"guestName": "Alice Smith", "email": "alice@example.com", "eventLimits": map[string]int{"ceremony": 3}},
			{"guestName": "Bob Jones", "eventLimits": map[string]int{"ceremony": 0, "unknown": 2}},
		},
		"events": []map[string]string{{"slug": "ceremony", "id": "forged-id"}},
	}

	t.Run("Invalid requests are rejected", func(t *testing.T) {
		response, _, err := postJSON(app, "/api/guests/bulk-import", map[string]any{"guests": []any{}}, cookie)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		mustReturnStatus(response, http.StatusBadRequest, t)
	})

	t.Run("Lineups of other hosts are not found", func(t *testing.T) {
		response, body, err := postJSON(app, "/api/guests/bulk-import", payload, otherCookie)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		mustReturnStatus(response, http.StatusNotFound, t)
		if body["error"] != "Lineup not found" {
			t.Errorf("Unexpected error message %v", body["error"])
		}
	})

	t.Run("Guests are imported with invitations to the lineup's events", func(t *testing.T) {
		response, body, err := postJSON(app, "/api/guests/bulk-import", payload, cookie)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		mustReturnStatus(response, http.StatusOK, t)
		if body["success"] != true || body["count"] != float64(2) {
			t.Errorf("Unexpected body %v", body)
		}

		var invitations []model.Invitation
		db.Where("event_id = ?", ceremony.ID).Find(&invitations)
		if len(invitations) != 1 || invitations[0].AttendeeLimit != 3 {
			t.Errorf("Expected a single invitation with limit 3, got %+v", invitations)
		}
	})

	t.Run("Importing only duplicates fails", func(t *testing.T) {
		response, body, err := postJSON(app, "/api/guests/bulk-import", payload, cookie)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		mustReturnStatus(response, http.StatusInternalServerError, t)
		errs, _ := body["errors"].([]any)
		if len(errs) != 2 || errs[0] != "Alice Smith: Guest with this name already exists" {
			t.Errorf("Unexpected errors %v", body["errors"])
		}
	})

	t.Run("Deleting all guests", func(t *testing.T) {
		response, body, err := postJSON(app, "/api/guests/delete-all", map[string]string{"lineupId": lineupID}, cookie)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		mustReturnStatus(response, http.StatusOK, t)
		if body["count"] != float64(2) {
			t.Errorf("Expected 2 guests deleted, got %v", body["count"])
		}

		var total int64
		db.Model(&model.Invitation{}).Count(&total)
		if total != 0 {
			t.Errorf("Expected invitations to be removed, %d remain", total)
		}
	})
}
