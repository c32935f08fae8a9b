package routes

import (
	"medicamp/camps"
	"medicamp/feedbacks"
	"medicamp/middleware"
	"medicamp/participants"
	"medicamp/payments"
	"medicamp/ratelim"
	"medicamp/users"

	"github.com/go-chi/chi/v5"
)

// organizerOnly is the guard chain for the organizer surface.
func organizerOnly(r chi.Router) chi.Router {
	return r.With(middleware.Authenticate, middleware.RequireOrganizer)
}

func AddCampRoutes(r chi.Router, rl *ratelim.RateLimiter) {
	r.Get("/addCamps/all", camps.GetAllCamps)
	r.Get("/addCamps/token", camps.GetCampsByOrganizer)
	r.Get("/camp-details/{campId}", camps.GetCampDetails)
	r.With(rl.Limit).Post("/addCamps", camps.CreateCamp)

	r.Get("/orgDashboard/camp/{campId}", camps.GetDashboardCamp)
	organizerOnly(r).Put("/orgDashboard/update-camp/{campId}", camps.UpdateCamp)
	organizerOnly(r).Delete("/delete-camp/{campId}", camps.DeleteCamp)
}

func AddUserRoutes(r chi.Router, rl *ratelim.RateLimiter) {
	r.With(rl.Limit).Post("/users", users.RegisterUser)
	r.Get("/users/role/{email}", users.GetUserRole)

	organizerOnly(r).Get("/organizer/users/search", users.SearchUsers)
	organizerOnly(r).Patch("/organizer/users/{id}/make-organizer", users.UpdateUserRole)
}

func AddParticipantRoutes(r chi.Router, rl *ratelim.RateLimiter) {
	r.With(rl.Limit).Post("/participants", participants.Register)
	r.Get("/participants/pending", participants.GetPending)
	r.Get("/participants/active", participants.GetActive)
	r.Get("/participants/profile/{email}", participants.GetProfile)
	r.Patch("/participants/profile/{id}", participants.PatchProfile)
	r.Get("/participants/registered/{email}", participants.GetRegistered)
	r.Delete("/participants/registered/{campId}", participants.DeleteRegistered)
	r.Get("/participants/feedback/{participantId}", participants.GetForFeedback)
	r.Get("/participants/{id}", participants.GetByID)
	organizerOnly(r).Patch("/participants/{id}/status", participants.UpdateStatus)

	r.Get("/analytics/participant", participants.GetAnalytics)
}

func AddOrganizerRoutes(r chi.Router) {
	organizerOnly(r).Get("/organizer/participants", participants.ListForOrganizer)
	organizerOnly(r).Patch("/organizer/confirm/{id}", participants.Confirm)
	organizerOnly(r).Delete("/organizer/cancel/{id}", participants.Cancel)

	r.Get("/organizerProfile/{email}", participants.GetOrganizerProfile)
	r.Put("/organizerProfile/update/{email}", participants.UpdateOrganizerProfile)
}

func AddPaymentRoutes(r chi.Router, rl *ratelim.RateLimiter) {
	r.With(rl.Limit).Post("/create-payment-intent", payments.CreateIntent)
	r.With(rl.Limit).Post("/payments", payments.RecordPayment)
	r.Get("/payments", payments.GetByParticipant)
	r.Get("/payments/users", payments.GetByParticipant)
	organizerOnly(r).Get("/payments/all", payments.GetAll)
}

func AddFeedbackRoutes(r chi.Router, rl *ratelim.RateLimiter) {
	r.With(rl.Limit).Post("/feedbacks", feedbacks.SubmitFeedback)
	r.Get("/feedbacks", feedbacks.GetFeedbacks)
	r.Get("/feedbacks/verified", feedbacks.GetVerifiedFeedbacks)
	r.Get("/stats/impact", feedbacks.GetImpactStats)
}
