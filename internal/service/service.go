package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/goserg/tournament/internal/bracket"
	"github.com/goserg/tournament/internal/cache/mem"
	"github.com/goserg/tournament/internal/config"
	"github.com/goserg/tournament/internal/domain"
	"github.com/goserg/tournament/internal/elo"
	"github.com/goserg/tournament/internal/glicko"
	"github.com/goserg/tournament/internal/notify"
	"github.com/goserg/tournament/internal/progression"
	"github.com/goserg/tournament/internal/promotion"
	"github.com/goserg/tournament/internal/reward"
	"github.com/goserg/tournament/internal/storage"
	"github.com/sirupsen/logrus"
)

var (
	ErrBracketLocked    = errors.New("bracket already generated")
	ErrTournamentClosed = errors.New("tournament is closed")
	ErrNotPromotable    = errors.New("player is not eligible for promotion")
	ErrAlreadyFinalized = errors.New("tournament already finalized")
	ErrInvalidPayment   = errors.New("unknown payment status")
)

// Storage is everything the service persists.
type Storage interface {
	storage.TournamentStorage
	storage.RegistrationStorage
	storage.BracketStorage
	storage.RankingStorage
	storage.RewardPlanStorage
	storage.ResultStorage
}

type TournamentService struct {
	storage  Storage
	engine   *progression.Engine
	notifier notify.Notifier
	policy   promotion.Policy
	rankings *mem.Cache
	seeding  bracket.Method
	now      func() time.Time
	log      *logrus.Entry

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func New(l *logrus.Logger, st Storage, n notify.Notifier, cfg config.Engine) *TournamentService {
	policy := promotion.DefaultPolicy()
	if cfg.PromotionMinMatches > 0 {
		policy.MinMatches = cfg.PromotionMinMatches
	}
	if cfg.PromotionCooldownDays > 0 {
		policy.MinDaysBetween = cfg.PromotionCooldownDays
	}
	seeding := bracket.Method(cfg.SeedingMethod)
	if !seeding.Valid() {
		seeding = bracket.MethodRanked
	}
	if n == nil {
		n = notify.Nop{}
	}
	return &TournamentService{
		storage:  st,
		engine:   progression.New(cfg.AutoAdvance),
		notifier: n,
		policy:   policy,
		rankings: mem.New(),
		seeding:  seeding,
		now:      time.Now,
		log:      l.WithFields(map[string]interface{}{"from": "service"}),
		locks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

// lock serializes every mutating operation on one tournament.
func (s *TournamentService) lock(tournamentID uuid.UUID) func() {
	s.mu.Lock()
	l, ok := s.locks[tournamentID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[tournamentID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *TournamentService) publish(events []domain.Event) {
	for _, ev := range events {
		s.notifier.Notify(ev)
	}
}

func (s *TournamentService) CreateTournament(ctx context.Context, t domain.Tournament) (domain.Tournament, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if !t.Tier.Valid() {
		return domain.Tournament{}, fmt.Errorf("unknown tier %q", t.Tier)
	}
	if t.Status == "" {
		t.Status = domain.TournamentRegistrationOpen
	}
	now := s.now()
	t.CreatedAt = now
	t.UpdatedAt = now
	if err := s.storage.SaveTournament(ctx, t); err != nil {
		return domain.Tournament{}, err
	}
	s.log.WithField("tournament", t.ID).Info("tournament created")
	return t, nil
}

func (s *TournamentService) GetTournament(ctx context.Context, id uuid.UUID) (domain.Tournament, error) {
	return s.storage.LoadTournament(ctx, id)
}

func (s *TournamentService) ListTournaments(ctx context.Context) ([]domain.Tournament, error) {
	return s.storage.ListTournaments(ctx)
}

func (s *TournamentService) GetBracket(ctx context.Context, tournamentID uuid.UUID) (domain.Bracket, error) {
	return s.storage.LoadBracket(ctx, tournamentID)
}

// Register adds a confirmed player to the tournament.
func (s *TournamentService) Register(ctx context.Context, tournamentID, playerID uuid.UUID, payment domain.PaymentStatus) (domain.Registration, error) {
	if !payment.Valid() {
		return domain.Registration{}, fmt.Errorf("%w: %q", ErrInvalidPayment, payment)
	}
	defer s.lock(tournamentID)()

	t, err := s.storage.LoadTournament(ctx, tournamentID)
	if err != nil {
		return domain.Registration{}, err
	}
	if t.Status.Closed() {
		return domain.Registration{}, ErrTournamentClosed
	}
	if t.BracketGenerated {
		return domain.Registration{}, ErrBracketLocked
	}
	if t.MaxParticipants > 0 && t.CurrentParticipants >= t.MaxParticipants {
		return domain.Registration{}, fmt.Errorf("tournament is full: %d players", t.MaxParticipants)
	}
	r := domain.Registration{
		ID:                 uuid.New(),
		TournamentID:       tournamentID,
		PlayerID:           playerID,
		RegistrationStatus: domain.RegistrationConfirmed,
		PaymentStatus:      payment,
		RegistrationDate:   s.now(),
	}
	if err := s.storage.SaveRegistration(ctx, r); err != nil {
		return domain.Registration{}, err
	}
	t.CurrentParticipants++
	t.UpdatedAt = s.now()
	if err := s.storage.SaveTournament(ctx, t); err != nil {
		return domain.Registration{}, err
	}
	return r, nil
}

// RemoveRegistration withdraws a player. Once a bracket exists its slots are fixed.
func (s *TournamentService) RemoveRegistration(ctx context.Context, tournamentID, playerID uuid.UUID) error {
	defer s.lock(tournamentID)()

	t, err := s.storage.LoadTournament(ctx, tournamentID)
	if err != nil {
		return err
	}
	if t.BracketGenerated {
		return ErrBracketLocked
	}
	if err := s.storage.RemoveRegistration(ctx, tournamentID, playerID); err != nil {
		return err
	}
	if t.CurrentParticipants > 0 {
		t.CurrentParticipants--
	}
	t.UpdatedAt = s.now()
	return s.storage.SaveTournament(ctx, t)
}

type GenerateOptions struct {
	// Method overrides the configured seeding method when set.
	Method bracket.Method
	Force  bool
}

// GenerateBracket seeds the tournament's paid, confirmed registrations into a
// new bracket and persists it together with the seed numbers.
func (s *TournamentService) GenerateBracket(ctx context.Context, tournamentID uuid.UUID, opts GenerateOptions) (domain.Bracket, error) {
	defer s.lock(tournamentID)()

	t, err := s.storage.LoadTournament(ctx, tournamentID)
	if err != nil {
		return domain.Bracket{}, err
	}
	if t.Status.Closed() {
		return domain.Bracket{}, ErrTournamentClosed
	}
	// Generating walks the tournament through its registration steps into play.
	if _, err := t.Status.Path(domain.TournamentOngoing); err != nil {
		return domain.Bracket{}, err
	}

	var existing *domain.Bracket
	b, err := s.storage.LoadBracket(ctx, tournamentID)
	switch {
	case err == nil:
		existing = &b
	case !errors.Is(err, storage.ErrNotFound):
		return domain.Bracket{}, err
	}

	regs, err := s.storage.LoadRegistrations(ctx, tournamentID)
	if err != nil {
		return domain.Bracket{}, err
	}
	entrants := make([]bracket.Entrant, 0, len(regs))
	for _, r := range regs {
		if !r.Seedable() {
			continue
		}
		ranking, err := s.ranking(ctx, r.PlayerID)
		if err != nil {
			return domain.Bracket{}, err
		}
		entrants = append(entrants, bracket.Entrant{
			PlayerID:     r.PlayerID,
			Elo:          ranking.EloPoints,
			RegisteredAt: r.RegistrationDate,
		})
	}

	method := opts.Method
	if method == "" {
		method = s.seeding
	}
	generated, seeds, err := bracket.Generate(t, existing, entrants, bracket.Options{
		Method:          method,
		ForceRegenerate: opts.Force,
		Now:             s.now,
	})
	if err != nil {
		return domain.Bracket{}, err
	}

	if err := s.storage.SaveBracket(ctx, generated); err != nil {
		return domain.Bracket{}, err
	}
	numbers := make(map[uuid.UUID]int, len(seeds))
	for _, seed := range seeds {
		numbers[seed.PlayerID] = seed.Number
	}
	if err := s.storage.SaveSeeds(ctx, tournamentID, numbers); err != nil {
		return domain.Bracket{}, err
	}

	t.BracketGenerated = true
	t.CurrentParticipants = len(entrants)
	t.Status = domain.TournamentOngoing
	t.UpdatedAt = s.now()
	if err := s.storage.SaveTournament(ctx, t); err != nil {
		return domain.Bracket{}, err
	}

	s.log.WithFields(logrus.Fields{
		"tournament": tournamentID,
		"players":    generated.TotalPlayers,
		"rounds":     generated.TotalRounds,
		"byes":       generated.Byes(),
		"method":     method,
	}).Info("bracket generated")
	s.publish([]domain.Event{{
		Type:         domain.EventBracketGenerated,
		TournamentID: tournamentID,
		Round:        1,
		At:           s.now(),
	}})
	return generated, nil
}

// RecordResult stores a match result, updates both players' ratings and
// finalizes the tournament when the bracket completes.
func (s *TournamentService) RecordResult(ctx context.Context, tournamentID uuid.UUID, res progression.Result) (domain.Bracket, error) {
	defer s.lock(tournamentID)()

	t, b, err := s.load(ctx, tournamentID)
	if err != nil {
		return domain.Bracket{}, err
	}
	step, err := s.engine.RecordResult(b, res)
	if err != nil {
		return domain.Bracket{}, err
	}
	if !step.Generated {
		return step.Bracket, s.finalizeIfComplete(ctx, t, step.Bracket)
	}
	m, _ := step.Bracket.Match(res.Match)
	rankings, err := s.rate(ctx, *m)
	if err != nil {
		return domain.Bracket{}, err
	}
	if err := s.storage.SaveResult(ctx, step.Bracket, rankings); err != nil {
		return domain.Bracket{}, err
	}
	s.cacheRankings(rankings)
	s.publish(step.Events)
	return step.Bracket, s.finalizeIfComplete(ctx, t, step.Bracket)
}

// AdvanceRound generates the round after round once it is complete.
func (s *TournamentService) AdvanceRound(ctx context.Context, tournamentID uuid.UUID, round int) (domain.Bracket, error) {
	return s.step(ctx, tournamentID, func(b domain.Bracket) (progression.Advance, error) {
		return s.engine.AdvanceRound(b, round)
	})
}

func (s *TournamentService) GenerateRemainingRounds(ctx context.Context, tournamentID uuid.UUID) (domain.Bracket, error) {
	return s.step(ctx, tournamentID, s.engine.GenerateRemainingRounds)
}

func (s *TournamentService) EnsureThirdPlace(ctx context.Context, tournamentID uuid.UUID) (domain.Bracket, error) {
	return s.step(ctx, tournamentID, s.engine.EnsureThirdPlace)
}

func (s *TournamentService) step(ctx context.Context, tournamentID uuid.UUID, fn func(domain.Bracket) (progression.Advance, error)) (domain.Bracket, error) {
	defer s.lock(tournamentID)()

	t, b, err := s.load(ctx, tournamentID)
	if err != nil {
		return domain.Bracket{}, err
	}
	out, err := fn(b)
	if err != nil {
		return domain.Bracket{}, err
	}
	if !out.Generated {
		return out.Bracket, s.finalizeIfComplete(ctx, t, out.Bracket)
	}
	if err := s.storage.SaveBracket(ctx, out.Bracket); err != nil {
		return domain.Bracket{}, err
	}
	s.publish(out.Events)
	return out.Bracket, s.finalizeIfComplete(ctx, t, out.Bracket)
}

func (s *TournamentService) load(ctx context.Context, tournamentID uuid.UUID) (domain.Tournament, domain.Bracket, error) {
	t, err := s.storage.LoadTournament(ctx, tournamentID)
	if err != nil {
		return domain.Tournament{}, domain.Bracket{}, err
	}
	if t.Status.Closed() {
		return domain.Tournament{}, domain.Bracket{}, ErrTournamentClosed
	}
	b, err := s.storage.LoadBracket(ctx, tournamentID)
	if err != nil {
		return domain.Tournament{}, domain.Bracket{}, fmt.Errorf("load bracket: %w", err)
	}
	return t, b, nil
}

func (s *TournamentService) ranking(ctx context.Context, playerID uuid.UUID) (domain.PlayerRanking, error) {
	if r, ok := s.rankings.GetRanking(playerID); ok {
		return r, nil
	}
	r, err := s.storage.LoadPlayerRanking(ctx, playerID)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.NewPlayerRanking(playerID, elo.StartRating), nil
	}
	if err != nil {
		return domain.PlayerRanking{}, err
	}
	s.rankings.Put(r)
	return r, nil
}

func (s *TournamentService) saveRanking(ctx context.Context, r domain.PlayerRanking) error {
	r.UpdatedAt = s.now()
	if err := s.storage.SavePlayerRanking(ctx, r); err != nil {
		return err
	}
	s.rankings.Put(r)
	return nil
}

// cacheRankings refreshes the cache once rankings are stored.
func (s *TournamentService) cacheRankings(rankings []domain.PlayerRanking) {
	for _, r := range rankings {
		s.rankings.Put(r)
	}
}

// rate returns both players' rankings after a completed match. Nothing is
// stored, so the caller can write them together with the bracket.
func (s *TournamentService) rate(ctx context.Context, m domain.Match) ([]domain.PlayerRanking, error) {
	if m.IsBye || m.Winner == uuid.Nil || m.Loser == uuid.Nil {
		return nil, nil
	}
	winner, err := s.ranking(ctx, m.Winner)
	if err != nil {
		return nil, err
	}
	loser, err := s.ranking(ctx, m.Loser)
	if err != nil {
		return nil, err
	}
	up := elo.Update(winner.EloPoints, loser.EloPoints, winner.TotalMatches, elo.Win)
	down := elo.Update(loser.EloPoints, winner.EloPoints, loser.TotalMatches, elo.Lose)

	now := s.now()
	winner.EloPoints = up.Rating
	winner.TotalMatches++
	winner.Wins++
	winner.UpdatedAt = now
	loser.EloPoints = down.Rating
	loser.TotalMatches++
	loser.UpdatedAt = now

	s.log.WithFields(logrus.Fields{
		"match":  m.Key.String(),
		"winner": m.Winner,
		"delta":  up.Delta,
		"loser":  m.Loser,
		"loss":   down.Delta,
	}).Debug("match rated")
	return []domain.PlayerRanking{winner, loser}, nil
}

// finalizeIfComplete pays out a bracket that has just completed. It also
// runs when a repeated step finds a completed bracket whose tournament is
// still open, which happens when an earlier finalization failed.
func (s *TournamentService) finalizeIfComplete(ctx context.Context, t domain.Tournament, b domain.Bracket) error {
	if s.engine.State(b) != domain.BracketCompleted {
		return nil
	}
	_, err := s.finalize(ctx, t, b)
	return err
}

// Finalize pays out a completed bracket and closes the tournament.
func (s *TournamentService) Finalize(ctx context.Context, tournamentID uuid.UUID) ([]reward.Payout, error) {
	defer s.lock(tournamentID)()

	t, err := s.storage.LoadTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if t.Status == domain.TournamentCompleted {
		return nil, ErrAlreadyFinalized
	}
	if t.Status.Closed() {
		return nil, ErrTournamentClosed
	}
	b, err := s.storage.LoadBracket(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("load bracket: %w", err)
	}
	return s.finalize(ctx, t, b)
}

// finalize credits the payouts and closes the tournament in one write, so it
// happens at most once per tournament.
func (s *TournamentService) finalize(ctx context.Context, t domain.Tournament, b domain.Bracket) ([]reward.Payout, error) {
	status, err := t.Status.Transition(domain.TournamentCompleted)
	if err != nil {
		return nil, err
	}
	standings, err := s.engine.Standings(b)
	if err != nil {
		return nil, err
	}

	var payouts []reward.Payout
	plan, err := s.storage.LoadRewardPlan(ctx, t.ID)
	switch {
	case err == nil:
		payouts = reward.Payouts(plan, standings)
	case errors.Is(err, storage.ErrNotFound):
		ranks := make(map[uuid.UUID]domain.RankCode, len(standings))
		for _, st := range standings {
			r, err := s.ranking(ctx, st.PlayerID)
			if err != nil {
				return nil, err
			}
			ranks[st.PlayerID] = r.RankCode
		}
		payouts = reward.RatingRewards(standings, ranks)
	default:
		return nil, err
	}

	now := s.now()
	rankings := make([]domain.PlayerRanking, 0, len(payouts))
	for _, p := range payouts {
		r, err := s.ranking(ctx, p.PlayerID)
		if err != nil {
			return nil, err
		}
		r.EloPoints += p.EloPoints
		r.SpaPoints += p.SpaPoints
		r.UpdatedAt = now
		rankings = append(rankings, r)
	}

	t.Status = status
	t.UpdatedAt = now
	if err := s.storage.SaveFinalization(ctx, t, rankings); err != nil {
		return nil, err
	}
	s.cacheRankings(rankings)
	s.log.WithFields(logrus.Fields{
		"tournament": t.ID,
		"players":    len(payouts),
	}).Info("tournament finalized")
	return payouts, nil
}

// ApplyPromotion moves a player up one rank if the promotion policy allows it.
func (s *TournamentService) ApplyPromotion(ctx context.Context, playerID uuid.UUID) (domain.PlayerRanking, error) {
	r, err := s.storage.LoadPlayerRanking(ctx, playerID)
	if err != nil {
		return domain.PlayerRanking{}, err
	}
	next, ok := s.policy.Check(r)
	if !ok {
		return domain.PlayerRanking{}, fmt.Errorf("%w: %s", ErrNotPromotable, playerID)
	}
	now := s.now()
	r.RankCode = next
	r.LastPromotionAt = &now
	if err := s.saveRanking(ctx, r); err != nil {
		return domain.PlayerRanking{}, err
	}
	s.publish([]domain.Event{{
		Type:     domain.EventPlayerPromoted,
		PlayerID: playerID,
		Rank:     next,
		At:       now,
	}})
	return r, nil
}

// Leaderboard lists all rankings, highest ELO first.
func (s *TournamentService) Leaderboard(ctx context.Context) ([]domain.PlayerRanking, error) {
	if !s.rankings.Valid() {
		rankings, err := s.storage.ListRankings(ctx)
		if err != nil {
			return nil, err
		}
		s.rankings.Update(rankings)
	}
	return s.rankings.Leaderboard(), nil
}

// PlanRewards derives the reward plan from the tournament's settings. An
// existing plan is recalculated keeping its manual edits. Invalid plans are
// returned with their validation but not stored.
func (s *TournamentService) PlanRewards(ctx context.Context, tournamentID uuid.UUID) (domain.RewardPlan, reward.Validation, error) {
	defer s.lock(tournamentID)()

	t, err := s.storage.LoadTournament(ctx, tournamentID)
	if err != nil {
		return domain.RewardPlan{}, reward.Validation{}, err
	}
	params := domain.RewardParams{
		Tier:            t.Tier,
		EntryFee:        t.EntryFee,
		MaxParticipants: t.MaxParticipants,
		GameFormat:      t.GameFormat,
	}

	var plan domain.RewardPlan
	existing, err := s.storage.LoadRewardPlan(ctx, tournamentID)
	switch {
	case err == nil:
		plan = reward.Recalculate(existing, params, true)
	case errors.Is(err, storage.ErrNotFound):
		plan = reward.Calculate(params)
	default:
		return domain.RewardPlan{}, reward.Validation{}, err
	}
	plan.TournamentID = tournamentID

	v := reward.Validate(plan, t.MaxParticipants)
	if !v.IsValid {
		return plan, v, v.Err()
	}
	for _, w := range v.Warnings {
		s.log.WithField("tournament", tournamentID).Warn(w)
	}
	if err := s.storage.SaveRewardPlan(ctx, plan); err != nil {
		return domain.RewardPlan{}, reward.Validation{}, err
	}
	t.PrizePool = plan.TotalPrize
	t.UpdatedAt = s.now()
	if err := s.storage.SaveTournament(ctx, t); err != nil {
		return domain.RewardPlan{}, reward.Validation{}, err
	}
	return plan, v, nil
}

func (s *TournamentService) RewardPlan(ctx context.Context, tournamentID uuid.UUID) (domain.RewardPlan, error) {
	return s.storage.LoadRewardPlan(ctx, tournamentID)
}

// Glicko2Standings rates every bracket on record as a single period.
func (s *TournamentService) Glicko2Standings(ctx context.Context) ([]glicko.Rating, error) {
	tournaments, err := s.storage.ListTournaments(ctx)
	if err != nil {
		return nil, err
	}
	brackets := make([]domain.Bracket, 0, len(tournaments))
	for _, t := range tournaments {
		b, err := s.storage.LoadBracket(ctx, t.ID)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		brackets = append(brackets, b)
	}
	return glicko.Calculate(brackets...), nil
}
