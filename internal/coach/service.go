package coach

import (
	"context"

	"github.com/openfit/fitctl/internal/domain"
	"github.com/openfit/fitctl/internal/session"
)

// Service produces coaching content for display. Every method degrades to a
// deterministic fallback document instead of failing, so a coaching surface
// never renders an error page; only listing stored recommendations can fail.
type Service struct {
	client Client
}

// NewService creates a Service backed by an AI service client.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// Recommendation returns the AI analysis for a single activity.
func (s *Service) Recommendation(ctx context.Context, sess *session.Session, activity domain.Activity) *Recommendation {
	rec, err := s.client.GenerateRecommendation(ctx, sess, activity)
	if err != nil || rec == nil {
		return FallbackRecommendation(activity)
	}
	return rec
}

// UserRecommendations lists previously generated recommendations. There is
// no meaningful fallback for stored history, so errors are surfaced.
func (s *Service) UserRecommendations(ctx context.Context, sess *session.Session) ([]Recommendation, error) {
	return s.client.UserRecommendations(ctx, sess)
}

func (s *Service) WorkoutPlan(ctx context.Context, sess *session.Session, req WorkoutPlanRequest) Document {
	doc, err := s.client.WorkoutPlan(ctx, sess, req)
	if err != nil || doc.Section("plan") == nil {
		return FallbackWorkoutPlan()
	}
	return doc
}

func (s *Service) NutritionAdvice(ctx context.Context, sess *session.Session, req NutritionRequest) Document {
	doc, err := s.client.NutritionAdvice(ctx, sess, req)
	if err != nil || doc.Section("nutrition") == nil {
		return FallbackNutritionAdvice()
	}
	return doc
}

func (s *Service) ProgressAnalysis(ctx context.Context, sess *session.Session, activities []domain.Activity) Document {
	doc, err := s.client.ProgressAnalysis(ctx, sess, activities)
	if err != nil || doc.Section("progress") == nil {
		return FallbackProgressAnalysis()
	}
	return doc
}

func (s *Service) Motivation(ctx context.Context, sess *session.Session, req MotivationRequest) Document {
	doc, err := s.client.Motivation(ctx, sess, req)
	if err != nil || doc.Section("motivation") == nil {
		return FallbackMotivation()
	}
	return doc
}

func (s *Service) InjuryPrevention(ctx context.Context, sess *session.Session, req InjuryPreventionRequest) Document {
	doc, err := s.client.InjuryPrevention(ctx, sess, req)
	if err != nil || doc.Section("injuryPrevention") == nil {
		return FallbackInjuryPrevention()
	}
	return doc
}

// Available reports whether the AI service is reachable.
func (s *Service) Available(ctx context.Context) bool {
	return s.client.Available(ctx)
}

func (s *Service) SocialSuggestions(ctx context.Context, sess *session.Session, req SocialRequest) Document {
	doc, err := s.client.SocialSuggestions(ctx, sess, req)
	if err != nil || doc.Section("social") == nil {
		return FallbackSocialSuggestions()
	}
	return doc
}
