// Package service contains the predict workflow: assemble, score, classify
package service

import (
	"context"
	"errors"
	"math"

	"inspectgrade/internal/core/features"
	"inspectgrade/internal/core/grade"
	"inspectgrade/internal/core/model"
	perr "inspectgrade/internal/platform/errors"
	"inspectgrade/internal/platform/logger"
	"inspectgrade/internal/platform/metrics"
	pstrings "inspectgrade/internal/platform/strings"
	"inspectgrade/internal/services/web/predict/domain"

	"github.com/google/uuid"
)

// Service defines the predict service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the predict service
type Svc struct {
	models   model.Provider
	cache    *scoreCache
	fallback *float64
	newID    func() uuid.UUID
}

// New constructs a predict service over the process model provider
func New(models model.Provider, opt Options) *Svc {
	if models == nil {
		panic("predict.Service requires a non nil model.Provider")
	}
	s := &Svc{models: models, cache: newScoreCache(opt.CacheSize), newID: uuid.New}
	if opt.HasFallback {
		v := opt.FallbackScore
		s.fallback = &v
	}
	return s
}

// ErrNoModel is returned while no artifact could be loaded
var ErrNoModel = perr.Unavailablef("model not found")

// PredictEncoded scores the zero-filled encoded vector
// a scoring failure is returned as is and no grade is produced
func (s *Svc) PredictEncoded(ctx context.Context, in domain.EncodedInput) (domain.Result, error) {
	m, err := s.model(features.SchemaEncoded)
	if err != nil {
		return domain.Result{}, err
	}
	score, cached, err := s.score(ctx, m, features.AssembleEncoded(in.Features()))
	if err != nil {
		metrics.RecordPrediction(features.SchemaEncoded, metrics.OutcomeError, "", 0)
		logger.C(ctx).Warn().Err(err).Stringer("code", perr.CodeOf(err)).Str("schema", features.SchemaEncoded).Msg("prediction failed")
		return domain.Result{}, err
	}
	r := s.graded(features.SchemaEncoded, score, domain.EncodedDecimals)
	r.Cached = cached
	metrics.RecordPrediction(r.Schema, metrics.OutcomeOK, r.Grade.Letter, score)
	return r, nil
}

// PredictRaw scores the five raw keys
// with a fallback score configured a scoring failure still yields a flagged grade
func (s *Svc) PredictRaw(ctx context.Context, in domain.RawInput) (domain.Result, error) {
	m, err := s.model(features.SchemaRaw)
	if err != nil {
		return domain.Result{}, err
	}
	name := pstrings.Or(in.Name, domain.DefaultName)

	score, cached, err := s.score(ctx, m, features.AssembleRaw(in.Features()))
	if err != nil {
		logger.C(ctx).Warn().Err(err).Stringer("code", perr.CodeOf(err)).Str("schema", features.SchemaRaw).Bool("fallback", s.fallback != nil).Msg("prediction failed")
		if s.fallback == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			metrics.RecordPrediction(features.SchemaRaw, metrics.OutcomeError, "", 0)
			return domain.Result{}, err
		}
		r := s.graded(features.SchemaRaw, *s.fallback, domain.RawDecimals)
		r.Name = name
		r.Fallback = true
		r.Error = err.Error()
		metrics.RecordPrediction(r.Schema, metrics.OutcomeFallback, r.Grade.Letter, r.Score)
		return r, nil
	}

	r := s.graded(features.SchemaRaw, score, domain.RawDecimals)
	r.Name = name
	r.Cached = cached
	metrics.RecordPrediction(r.Schema, metrics.OutcomeOK, r.Grade.Letter, score)
	return r, nil
}

// Form describes the inputs the loaded model expects
func (s *Svc) Form(_ context.Context) (domain.Form, error) {
	m := s.models.Model()
	if m == nil {
		return domain.Form{}, ErrNoModel
	}
	f, ok := domain.FormFor(m.Schema().Name, m.Kind())
	if !ok {
		return domain.Form{}, perr.SchemaMismatchf("model declares unknown schema %q", m.Schema().Name)
	}
	return f, nil
}

func (s *Svc) model(schema string) (model.Model, error) {
	m := s.models.Model()
	if m == nil {
		metrics.RecordPrediction(schema, metrics.OutcomeNoModel, "", 0)
		return nil, ErrNoModel
	}
	return m, nil
}

func (s *Svc) score(ctx context.Context, m model.Model, v *features.Vector) (float64, bool, error) {
	key := m.Schema().Name + "|" + v.Fingerprint()
	if score, ok := s.cache.get(key); ok {
		return score, true, nil
	}
	score, err := m.Predict(ctx, v)
	if err != nil {
		if _, ok := perr.As(err); !ok {
			err = perr.Wrap(err, perr.ErrorCodeUnknown, "prediction failed")
		}
		return 0, false, err
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, false, perr.Internalf("model returned a non-finite score (%v)", score)
	}
	s.cache.add(key, score)
	return score, false, nil
}

func (s *Svc) graded(schema string, score float64, decimals int) domain.Result {
	g := grade.Classify(score)
	return domain.Result{
		ID:        s.newID(),
		Schema:    schema,
		Score:     score,
		ScoreText: grade.FormatScore(score, decimals),
		Grade:     &g,
	}
}
