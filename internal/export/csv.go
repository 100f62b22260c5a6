// Package export renders the standings table as a spreadsheet-friendly CSV.
package export

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/goserg/tennisleague/internal/domain"
	"github.com/goserg/tennisleague/internal/standings"
)

var ErrNoData = errors.New("no players to export")

const bom = "\uFEFF"

var header = []string{
	"Rank", "Jogador",
	"Pontos (Geral)", "Jogos (Geral)", "Vitorias (Geral)", "Derrotas (Geral)",
	"Sets Ganhos (Geral)", "Pontos Jogos (Geral)", "Vitorias W.O (Geral)", "Derrotas W.O (Geral)",
	"Pontos (Mes)", "Jogos (Mes)", "Vitorias (Mes)", "Derrotas (Mes)",
	"Sets Ganhos (Mes)", "Pontos Jogos (Mes)", "Vitorias W.O (Mes)", "Derrotas W.O (Mes)",
}

// CSV writes one row per player in standings order. The output starts with a UTF-8
// byte order mark and rows are separated by a bare "\n". The name column is always
// quoted, which encoding/csv cannot be told to do.
func CSV(w io.Writer, players []domain.Player) error {
	if len(players) == 0 {
		return ErrNoData
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(bom)
	bw.WriteString(strings.Join(header, ","))
	for i, p := range standings.Rank(players) {
		bw.WriteByte('\n')
		bw.WriteString(strconv.Itoa(i + 1))
		bw.WriteByte(',')
		bw.WriteString(quote(p.Name))
		for _, v := range values(p) {
			bw.WriteByte(',')
			bw.WriteString(strconv.Itoa(v))
		}
	}
	return bw.Flush()
}

func values(p domain.Player) []int {
	return []int{
		p.TotalPoints, p.GamesPlayed, p.Wins, p.Losses,
		p.SetsWon, p.PointsFromGames, p.TotalWoWins, p.TotalWoLosses,
		p.MonthlyPoints, p.MonthlyGamesPlayed, p.MonthlyWins, p.MonthlyLosses,
		p.MonthlySetsWon, p.MonthlyPointsFromGames, p.MonthlyWoWins, p.MonthlyWoLosses,
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// FileName is the suggested name of the CSV for the given month.
func FileName(monthName string) string {
	return "ranking_geral_mes_de_" + strings.ToLower(monthName) + ".csv"
}
