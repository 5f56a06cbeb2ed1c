// Package export writes the ledgers to an xlsx workbook.
package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alumnifc/clubledger/internal/models"
)

// Source is the read side of the finance engine.
type Source interface {
	ListPlayers(ctx context.Context) ([]*models.Player, error)
	ListTeamFund(ctx context.Context, month string) ([]*models.TeamFundTransaction, error)
	ListPersonal(ctx context.Context, playerID string) ([]*models.PersonalTransaction, error)
	ListDining(ctx context.Context) ([]*models.DiningRecord, error)
	ListMemberFund(ctx context.Context) ([]*models.MemberFundTransaction, error)
	ListMatches(ctx context.Context) ([]*models.Match, error)
}

// Sheet names, in workbook order.
const (
	SheetPlayers    = "Players"
	SheetTeamFund   = "TeamFund"
	SheetPersonal   = "Personal"
	SheetDining     = "Dining"
	SheetMemberFund = "MemberFund"
	SheetMatches    = "Matches"
)

type sheet struct {
	name    string
	headers []string
	widths  []float64
	rows    [][]any
}

// Workbook builds one sheet per ledger plus the roster and matches.
func Workbook(ctx context.Context, src Source) (*excelize.File, error) {
	sheets, err := collect(ctx, src)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	for i, s := range sheets {
		if i == 0 {
			// NewFile starts with "Sheet1".
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s); err != nil {
			return nil, fmt.Errorf("write sheet %s: %w", s.name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Write streams the workbook to w.
func Write(ctx context.Context, src Source, w io.Writer) error {
	f, err := Workbook(ctx, src)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func writeSheet(f *excelize.File, s sheet) error {
	header := make([]any, len(s.headers))
	for i, h := range s.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
		return err
	}
	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return err
		}
	}
	for i, width := range s.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.name, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func collect(ctx context.Context, src Source) ([]sheet, error) {
	players, err := src.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	team, err := src.ListTeamFund(ctx, "")
	if err != nil {
		return nil, err
	}
	personal, err := src.ListPersonal(ctx, "")
	if err != nil {
		return nil, err
	}
	dining, err := src.ListDining(ctx)
	if err != nil {
		return nil, err
	}
	member, err := src.ListMemberFund(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := src.ListMatches(ctx)
	if err != nil {
		return nil, err
	}

	return []sheet{
		playerSheet(players),
		teamFundSheet(team),
		personalSheet(personal, names),
		diningSheet(dining),
		memberFundSheet(member, names),
		matchSheet(matches, names),
	}, nil
}

func playerSheet(players []*models.Player) sheet {
	s := sheet{
		name:    SheetPlayers,
		headers: []string{"Name", "Jersey", "Balance", "Member"},
		widths:  []float64{20, 8, 12, 8},
	}
	for _, p := range players {
		member := "no"
		if p.IsMember {
			member = "yes"
		}
		s.rows = append(s.rows, []any{p.Name, p.JerseyNumber, p.PersonalBalance.StringFixed(2), member})
	}
	return s
}

func teamFundSheet(rows []*models.TeamFundTransaction) sheet {
	s := sheet{
		name:    SheetTeamFund,
		headers: []string{"Date", "Type", "Category", "Amount", "Handler", "Description", "Source"},
		widths:  []float64{12, 10, 20, 12, 14, 30, 20},
	}
	for _, t := range rows {
		source := ""
		if t.Origin.IsDerived() {
			source = fmt.Sprintf("%s:%s", t.Origin.Kind, t.Origin.ID)
		}
		s.rows = append(s.rows, []any{
			t.Date.String(), string(t.Type), t.Category, t.Amount.StringFixed(2),
			t.HandlerName, t.Description, source,
		})
	}
	return s
}

func personalSheet(rows []*models.PersonalTransaction, names map[string]string) sheet {
	s := sheet{
		name:    SheetPersonal,
		headers: []string{"Date", "Player", "Category", "Amount", "Description"},
		widths:  []float64{12, 20, 16, 12, 30},
	}
	for _, t := range rows {
		s.rows = append(s.rows, []any{
			t.Date.String(), names[t.PlayerID], t.Category, t.Amount.StringFixed(2), t.Description,
		})
	}
	return s
}

func diningSheet(rows []*models.DiningRecord) sheet {
	s := sheet{
		name:    SheetDining,
		headers: []string{"Date", "Restaurant", "Total", "Participants", "Per person", "Subsidy", "Cap", "Handler"},
		widths:  []float64{12, 20, 12, 12, 12, 12, 10, 14},
	}
	for _, r := range rows {
		s.rows = append(s.rows, []any{
			r.Date.String(), r.RestaurantName, r.TotalAmount.StringFixed(2), r.ParticipantCount,
			r.PerPersonAmount.StringFixed(2), r.SubsidyAmount.StringFixed(2), r.Cap.StringFixed(2), r.HandlerName,
		})
	}
	return s
}

func memberFundSheet(rows []*models.MemberFundTransaction, names map[string]string) sheet {
	s := sheet{
		name:    SheetMemberFund,
		headers: []string{"Date", "Type", "Total", "Per person", "Payers", "Description"},
		widths:  []float64{12, 10, 12, 12, 40, 30},
	}
	for _, t := range rows {
		per := ""
		if t.PerPersonAmount.Valid {
			per = t.PerPersonAmount.Decimal.StringFixed(2)
		}
		s.rows = append(s.rows, []any{
			t.Date.String(), string(t.Type), t.TotalAmount.StringFixed(2), per,
			joinNames(t.PayerIDs, names), t.Description,
		})
	}
	return s
}

func matchSheet(matches []*models.Match, names map[string]string) sheet {
	s := sheet{
		name:    SheetMatches,
		headers: []string{"Date", "Opponent", "Type", "Score", "Result", "Cost", "Fees", "Attendees"},
		widths:  []float64{12, 20, 16, 8, 8, 10, 10, 40},
	}
	for _, m := range matches {
		score := ""
		if m.OurScore != nil && m.TheirScore != nil {
			score = fmt.Sprintf("%d-%d", *m.OurScore, *m.TheirScore)
		}
		ids := make([]string, len(m.Attendances))
		for i, a := range m.Attendances {
			ids[i] = a.PlayerID
		}
		s.rows = append(s.rows, []any{
			m.Date.String(), m.Opponent, string(m.Type), score, m.Result,
			m.Cost.StringFixed(2), m.TotalFees().StringFixed(2), joinNames(ids, names),
		})
	}
	return s
}

func joinNames(ids []string, names map[string]string) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		if n, ok := names[id]; ok {
			out[i] = n
		} else {
			out[i] = id
		}
	}
	return strings.Join(out, ", ")
}
