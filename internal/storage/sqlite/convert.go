package sqlite

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/goserg/tournament/gen/model"
	"github.com/goserg/tournament/internal/domain"
)

func convertTournamentToDomain(t model.Tournaments) (domain.Tournament, error) {
	id, err := uuid.Parse(t.ID)
	if err != nil {
		return domain.Tournament{}, err
	}
	return domain.Tournament{
		ID:                  id,
		Name:                t.Name,
		Status:              domain.TournamentStatus(t.Status),
		Tier:                domain.Tier(t.Tier),
		GameFormat:          domain.GameFormat(t.GameFormat),
		MaxParticipants:     int(t.MaxParticipants),
		CurrentParticipants: int(t.CurrentParticipants),
		EntryFee:            t.EntryFee,
		PrizePool:           t.PrizePool,
		BracketGenerated:    t.BracketGenerated,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}, nil
}

func convertTournamentFromDomain(t domain.Tournament) model.Tournaments {
	return model.Tournaments{
		ID:                  t.ID.String(),
		Name:                t.Name,
		Status:              string(t.Status),
		Tier:                string(t.Tier),
		GameFormat:          string(t.GameFormat),
		MaxParticipants:     int32(t.MaxParticipants),
		CurrentParticipants: int32(t.CurrentParticipants),
		EntryFee:            t.EntryFee,
		PrizePool:           t.PrizePool,
		BracketGenerated:    t.BracketGenerated,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

func convertRegistrationToDomain(r model.Registrations) (domain.Registration, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return domain.Registration{}, err
	}
	tournamentID, err := uuid.Parse(r.TournamentID)
	if err != nil {
		return domain.Registration{}, err
	}
	playerID, err := uuid.Parse(r.PlayerID)
	if err != nil {
		return domain.Registration{}, err
	}
	reg := domain.Registration{
		ID:                 id,
		TournamentID:       tournamentID,
		PlayerID:           playerID,
		RegistrationStatus: domain.RegistrationStatus(r.RegistrationStatus),
		PaymentStatus:      domain.PaymentStatus(r.PaymentStatus),
		RegistrationDate:   r.RegistrationDate,
	}
	if r.SeedNumber != nil {
		reg.SeedNumber = int(*r.SeedNumber)
	}
	return reg, nil
}

func convertRegistrationFromDomain(r domain.Registration) model.Registrations {
	return model.Registrations{
		ID:                 r.ID.String(),
		TournamentID:       r.TournamentID.String(),
		PlayerID:           r.PlayerID.String(),
		RegistrationStatus: string(r.RegistrationStatus),
		PaymentStatus:      string(r.PaymentStatus),
		SeedNumber:         seedPtr(r.SeedNumber),
		RegistrationDate:   r.RegistrationDate,
	}
}

func seedPtr(seed int) *int32 {
	if seed <= 0 {
		return nil
	}
	v := int32(seed)
	return &v
}

func convertBracketFromDomain(b domain.Bracket) (model.Brackets, []model.Matches) {
	bracket := model.Brackets{
		ID:           b.ID.String(),
		TournamentID: b.TournamentID.String(),
		TotalPlayers: int32(b.TotalPlayers),
		TotalRounds:  int32(b.TotalRounds),
		CurrentRound: int32(b.CurrentRound),
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	matches := make([]model.Matches, 0, len(b.Matches))
	for _, m := range b.Matches {
		row := model.Matches{
			ID:           m.ID.String(),
			BracketID:    bracket.ID,
			Round:        int32(m.Key.Round),
			Number:       int32(m.Key.Number),
			Player1ID:    uuidPtr(m.Player1),
			Player2ID:    uuidPtr(m.Player2),
			ScorePlayer1: int32(m.ScorePlayer1),
			ScorePlayer2: int32(m.ScorePlayer2),
			WinnerID:     uuidPtr(m.Winner),
			LoserID:      uuidPtr(m.Loser),
			Status:       string(m.Status),
			IsThirdPlace: m.IsThirdPlace,
			IsBye:        m.IsBye,
		}
		row.Prev1Round, row.Prev1Number = keyColumns(m.Prev1)
		row.Prev2Round, row.Prev2Number = keyColumns(m.Prev2)
		row.NextRound, row.NextNumber = keyColumns(m.Next)
		matches = append(matches, row)
	}
	return bracket, matches
}

func convertBracketToDomain(b model.Brackets, matches []model.Matches) (domain.Bracket, error) {
	id, err := uuid.Parse(b.ID)
	if err != nil {
		return domain.Bracket{}, err
	}
	tournamentID, err := uuid.Parse(b.TournamentID)
	if err != nil {
		return domain.Bracket{}, err
	}
	bracket := domain.Bracket{
		ID:           id,
		TournamentID: tournamentID,
		TotalPlayers: int(b.TotalPlayers),
		TotalRounds:  int(b.TotalRounds),
		CurrentRound: int(b.CurrentRound),
		Status:       domain.BracketStatus(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	converted := make([]domain.Match, 0, len(matches))
	for _, row := range matches {
		m, err := convertMatchToDomain(row)
		if err != nil {
			return domain.Bracket{}, err
		}
		converted = append(converted, m)
	}
	bracket.Add(converted...)
	return bracket, nil
}

func convertMatchToDomain(row model.Matches) (domain.Match, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.Match{}, err
	}
	m := domain.Match{
		ID:           id,
		Key:          domain.MatchKey{Round: int(row.Round), Number: int(row.Number)},
		ScorePlayer1: int(row.ScorePlayer1),
		ScorePlayer2: int(row.ScorePlayer2),
		Status:       domain.MatchStatus(row.Status),
		IsThirdPlace: row.IsThirdPlace,
		IsBye:        row.IsBye,
		Prev1:        keyFromColumns(row.Prev1Round, row.Prev1Number),
		Prev2:        keyFromColumns(row.Prev2Round, row.Prev2Number),
		Next:         keyFromColumns(row.NextRound, row.NextNumber),
	}
	for _, f := range []struct {
		dst *uuid.UUID
		src *string
	}{
		{&m.Player1, row.Player1ID},
		{&m.Player2, row.Player2ID},
		{&m.Winner, row.WinnerID},
		{&m.Loser, row.LoserID},
	} {
		if *f.dst, err = parseUUIDPtr(f.src); err != nil {
			return domain.Match{}, err
		}
	}
	return m, nil
}

func uuidPtr(id uuid.UUID) *string {
	if id == uuid.Nil {
		return nil
	}
	s := id.String()
	return &s
}

func parseUUIDPtr(s *string) (uuid.UUID, error) {
	if s == nil || *s == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(*s)
}

func keyColumns(k *domain.MatchKey) (*int32, *int32) {
	if k == nil {
		return nil, nil
	}
	r, n := int32(k.Round), int32(k.Number)
	return &r, &n
}

func keyFromColumns(r, n *int32) *domain.MatchKey {
	if r == nil || n == nil {
		return nil
	}
	return &domain.MatchKey{Round: int(*r), Number: int(*n)}
}

func convertRankingToDomain(r model.PlayerRankings) (domain.PlayerRanking, error) {
	id, err := uuid.Parse(r.PlayerID)
	if err != nil {
		return domain.PlayerRanking{}, err
	}
	return domain.PlayerRanking{
		PlayerID:        id,
		EloPoints:       int(r.EloPoints),
		RankCode:        domain.RankCode(r.RankCode),
		SpaPoints:       int(r.SpaPoints),
		TotalMatches:    int(r.TotalMatches),
		Wins:            int(r.Wins),
		LastPromotionAt: r.LastPromotionAt,
		UpdatedAt:       r.UpdatedAt,
	}, nil
}

func convertRankingFromDomain(r domain.PlayerRanking) model.PlayerRankings {
	return model.PlayerRankings{
		PlayerID:        r.PlayerID.String(),
		EloPoints:       int32(r.EloPoints),
		RankCode:        string(r.RankCode),
		SpaPoints:       int32(r.SpaPoints),
		TotalMatches:    int32(r.TotalMatches),
		Wins:            int32(r.Wins),
		LastPromotionAt: r.LastPromotionAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func convertRewardPlanFromDomain(p domain.RewardPlan) (model.RewardPlans, []model.RewardPositions, []model.SpecialAwards, error) {
	tournamentID := p.TournamentID.String()
	plan := model.RewardPlans{
		TournamentID:    tournamentID,
		Tier:            string(p.Params.Tier),
		EntryFee:        p.Params.EntryFee,
		MaxParticipants: int32(p.Params.MaxParticipants),
		GameFormat:      string(p.Params.GameFormat),
		TotalPrize:      p.TotalPrize,
	}
	positions := make([]model.RewardPositions, 0, len(p.Positions))
	for _, pos := range p.Positions {
		items := pos.Items
		if items == nil {
			items = []string{}
		}
		encoded, err := json.Marshal(items)
		if err != nil {
			return model.RewardPlans{}, nil, nil, err
		}
		positions = append(positions, model.RewardPositions{
			TournamentID: tournamentID,
			Position:     int32(pos.Position),
			EloPoints:    int32(pos.EloPoints),
			SpaPoints:    int32(pos.SpaPoints),
			CashPrize:    pos.CashPrize,
			Items:        string(encoded),
			IsVisible:    pos.IsVisible,
		})
	}
	awards := make([]model.SpecialAwards, 0, len(p.SpecialAwards))
	for _, a := range p.SpecialAwards {
		awards = append(awards, model.SpecialAwards{
			TournamentID: tournamentID,
			ID:           a.ID,
			Name:         a.Name,
			CashPrize:    a.CashPrize,
		})
	}
	return plan, positions, awards, nil
}

func convertRewardPlanToDomain(p model.RewardPlans, positions []model.RewardPositions, awards []model.SpecialAwards) (domain.RewardPlan, error) {
	tournamentID, err := uuid.Parse(p.TournamentID)
	if err != nil {
		return domain.RewardPlan{}, err
	}
	plan := domain.RewardPlan{
		TournamentID: tournamentID,
		Params: domain.RewardParams{
			Tier:            domain.Tier(p.Tier),
			EntryFee:        p.EntryFee,
			MaxParticipants: int(p.MaxParticipants),
			GameFormat:      domain.GameFormat(p.GameFormat),
		},
		TotalPrize: p.TotalPrize,
	}
	for _, pos := range positions {
		var items []string
		if err := json.Unmarshal([]byte(pos.Items), &items); err != nil {
			return domain.RewardPlan{}, err
		}
		if len(items) == 0 {
			items = nil
		}
		plan.Positions = append(plan.Positions, domain.RewardPosition{
			Position:  int(pos.Position),
			EloPoints: int(pos.EloPoints),
			SpaPoints: int(pos.SpaPoints),
			CashPrize: pos.CashPrize,
			Items:     items,
			IsVisible: pos.IsVisible,
		})
	}
	for _, a := range awards {
		plan.SpecialAwards = append(plan.SpecialAwards, domain.SpecialAward{
			ID:        a.ID,
			Name:      a.Name,
			CashPrize: a.CashPrize,
		})
	}
	return plan, nil
}
