package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventcollection/internal/delivery/http/controllers"
)

// Controllers bundles the per-entity controllers the router wires up.
type Controllers struct {
	Event       *controllers.EventController
	Organizer   *controllers.OrganizerController
	TeamMember  *controllers.TeamMemberController
	Sponsor     *controllers.SponsorController
	Participant *controllers.ParticipantController
	Feedback    *controllers.FeedbackController
	Photo       *controllers.PhotoController
	Database    *controllers.DatabaseController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /event", c.Event.ListEvents)
	mux.HandleFunc("GET /event/search", c.Event.SearchEvents)
	mux.HandleFunc("GET /event/high-rated-detailed/{ratingThreshold}", c.Event.HighRatedDetailed)
	mux.HandleFunc("GET /event/{eventID}", c.Event.GetEvent)
	mux.HandleFunc("GET /eventSummaries", c.Event.EventSummaries)
	mux.HandleFunc("POST /event", c.Event.CreateEvent)
	mux.HandleFunc("PUT /event/{eventID}", c.Event.UpdateEvent)
	mux.HandleFunc("DELETE /event/{eventID}", c.Event.DeleteEvent)

	// Organizers
	mux.HandleFunc("GET /organizer", c.Organizer.ListOrganizers)
	mux.HandleFunc("POST /organizer", c.Organizer.CreateOrganizer)
	mux.HandleFunc("PUT /organizer/{organizerID}", c.Organizer.UpdateOrganizer)
	mux.HandleFunc("DELETE /organizer/{organizerID}", c.Organizer.DeleteOrganizer)
	mux.HandleFunc("GET /organizers/total-events", c.Organizer.TotalEvents)
	mux.HandleFunc("GET /organizers/highest-average-rating", c.Organizer.HighestAverageRating)
	mux.HandleFunc("GET /organizers/contact-detail", c.Organizer.ContactDetails)

	// Team members (composite natural key in the path)
	mux.HandleFunc("GET /teamMember", c.TeamMember.ListTeamMembers)
	mux.HandleFunc("POST /teamMember", c.TeamMember.CreateTeamMember)
	mux.HandleFunc("PUT /teamMember/{memberName}/{memberPhoneNo}", c.TeamMember.UpdateTeamMember)
	mux.HandleFunc("DELETE /teamMember/{memberName}/{memberPhoneNo}", c.TeamMember.DeleteTeamMember)

	// Sponsors
	mux.HandleFunc("GET /sponsor", c.Sponsor.ListSponsors)
	mux.HandleFunc("POST /sponsor", c.Sponsor.CreateSponsor)
	mux.HandleFunc("PUT /sponsor/{sponsorName}/{sponsorPhoneNo}", c.Sponsor.UpdateSponsor)
	mux.HandleFunc("DELETE /sponsor/{sponsorName}/{sponsorPhoneNo}", c.Sponsor.DeleteSponsor)
	mux.HandleFunc("GET /sponsor/{sponsorName}/{sponsorPhoneNo}/support", c.Sponsor.ListSupport)
	mux.HandleFunc("GET /sponsors/all-types-supported", c.Sponsor.AllTypesSupported)

	// Participants
	mux.HandleFunc("GET /participant", c.Participant.ListParticipants)
	mux.HandleFunc("POST /participant", c.Participant.CreateParticipant)
	mux.HandleFunc("PUT /participant/{participantID}", c.Participant.UpdateParticipant)
	mux.HandleFunc("DELETE /participant/{participantID}", c.Participant.DeleteParticipant)

	// Feedback
	mux.HandleFunc("GET /feedback", c.Feedback.ListFeedback)
	mux.HandleFunc("POST /feedback", c.Feedback.CreateFeedback)
	mux.HandleFunc("PUT /feedback/{feedbackID}", c.Feedback.UpdateFeedback)
	mux.HandleFunc("DELETE /feedback/{feedbackID}", c.Feedback.DeleteFeedback)

	// Photos (the browser client uses the capitalized path)
	mux.HandleFunc("GET /Photo", c.Photo.ListPhotos)
	mux.HandleFunc("POST /Photo", c.Photo.CreatePhoto)
	mux.HandleFunc("PUT /Photo/{photoID}", c.Photo.UpdatePhoto)
	mux.HandleFunc("DELETE /Photo/{photoID}", c.Photo.DeletePhoto)

	// Schema introspection and projection
	mux.HandleFunc("GET /tables", c.Database.ListTables)
	mux.HandleFunc("GET /tables/{tableName}/attributes", c.Database.ListTableAttributes)
	mux.HandleFunc("GET /customized-table", c.Database.CustomizedTable)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
