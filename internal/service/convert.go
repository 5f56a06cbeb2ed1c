package service

import (
	"github.com/shopspring/decimal"

	"github.com/alumnifc/clubledger/internal/calculator"
	"github.com/alumnifc/clubledger/internal/models"
	"github.com/alumnifc/clubledger/pkg/clubapi"
)

// Conversions between domain models and wire messages.

func toAPIPlayer(p *models.Player) *clubapi.Player {
	return &clubapi.Player{
		ID:              p.ID,
		Name:            p.Name,
		JerseyNumber:    p.JerseyNumber,
		PersonalBalance: p.PersonalBalance,
		IsMember:        p.IsMember,
		CreatedAt:       p.CreatedAt,
	}
}

func toAPIPersonal(t *models.PersonalTransaction) *clubapi.PersonalTransaction {
	return &clubapi.PersonalTransaction{
		ID:             t.ID,
		PlayerID:       t.PlayerID,
		Amount:         t.Amount,
		Category:       t.Category,
		Description:    t.Description,
		Date:           t.Date,
		DiningRecordID: t.DiningRecordID,
		CreatedAt:      t.CreatedAt,
	}
}

func toAPIPersonals(rows []*models.PersonalTransaction) []*clubapi.PersonalTransaction {
	out := make([]*clubapi.PersonalTransaction, len(rows))
	for i, r := range rows {
		out[i] = toAPIPersonal(r)
	}
	return out
}

func toAPITeamFund(t *models.TeamFundTransaction) *clubapi.TeamFundTransaction {
	out := &clubapi.TeamFundTransaction{
		ID:          t.ID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Category:    t.Category,
		Description: t.Description,
		HandlerName: t.HandlerName,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
	switch t.Origin.Kind {
	case models.OriginDining:
		out.DiningRecordID = t.Origin.ID
	case models.OriginMatch:
		out.SourceMatchID = t.Origin.ID
	}
	return out
}

func toAPIMemberFund(t *models.MemberFundTransaction) *clubapi.MemberFundTransaction {
	out := &clubapi.MemberFundTransaction{
		ID:          t.ID,
		TotalAmount: t.TotalAmount,
		Type:        string(t.Type),
		Description: t.Description,
		Date:        t.Date,
		MatchID:     t.MatchID,
		PayerIDs:    t.PayerIDs,
		CreatedAt:   t.CreatedAt,
	}
	if t.PerPersonAmount.Valid {
		per := t.PerPersonAmount.Decimal
		out.PerPersonAmount = &per
	}
	return out
}

func toAPIDining(r *models.DiningRecord) *clubapi.DiningRecord {
	return &clubapi.DiningRecord{
		ID:               r.ID,
		Date:             r.Date,
		TotalAmount:      r.TotalAmount,
		ParticipantCount: r.ParticipantCount,
		PerPersonAmount:  r.PerPersonAmount,
		SubsidyAmount:    r.SubsidyAmount,
		Cap:              r.Cap,
		HandlerName:      r.HandlerName,
		RestaurantName:   r.RestaurantName,
		CreatedAt:        r.CreatedAt,
	}
}

func toAPIMatch(m *models.Match) *clubapi.Match {
	out := &clubapi.Match{
		ID:          m.ID,
		Date:        m.Date,
		Opponent:    m.Opponent,
		Type:        string(m.Type),
		LeagueName:  m.LeagueName,
		OurScore:    m.OurScore,
		TheirScore:  m.TheirScore,
		Result:      m.Result,
		Cost:        m.Cost,
		Attendances: make([]clubapi.Attendance, len(m.Attendances)),
		CreatedAt:   m.CreatedAt,
	}
	for i, a := range m.Attendances {
		out.Attendances[i] = clubapi.Attendance{
			PlayerID: a.PlayerID,
			Goals:    a.Goals,
			Assists:  a.Assists,
			Fee:      a.Fee,
		}
	}
	return out
}

func fromAPIMatch(m *clubapi.Match) *models.Match {
	out := &models.Match{
		ID:          m.ID,
		Date:        m.Date,
		Opponent:    m.Opponent,
		Type:        models.MatchType(m.Type),
		LeagueName:  m.LeagueName,
		OurScore:    m.OurScore,
		TheirScore:  m.TheirScore,
		Result:      m.Result,
		Cost:        m.Cost,
		Attendances: make([]models.Attendance, len(m.Attendances)),
	}
	for i, a := range m.Attendances {
		out.Attendances[i] = models.Attendance{
			PlayerID: a.PlayerID,
			Goals:    a.Goals,
			Assists:  a.Assists,
			Fee:      a.Fee,
		}
	}
	return out
}

func toAPIDrift(d []calculator.BalanceDrift) []*clubapi.BalanceDrift {
	out := make([]*clubapi.BalanceDrift, len(d))
	for i, x := range d {
		out[i] = &clubapi.BalanceDrift{PlayerID: x.PlayerID, Stored: x.Stored, Computed: x.Computed}
	}
	return out
}

// optionalCap turns an absent cap into the engine default.
func optionalCap(c *decimal.Decimal) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	return *c
}
