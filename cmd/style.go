package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/flopstats/config"
)

func bannerText() (string, error) {
	return pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("F", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("lop ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("S", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("tats", pterm.FgDarkGray.ToStyle()),
	).Srender()
}

// requestPanel describes the situation being summarized.
func requestPanel(req config.Request) string {
	sizes := make([]string, 0, len(req.Betsizes))
	for _, s := range req.Betsizes {
		sizes = append(sizes, s.String())
	}
	actions := make([]string, 0, len(req.Actions))
	for _, a := range req.Actions {
		actions = append(actions, a.LongName())
	}

	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightYellow("|SITUATION|")).WithTitleTopCenter().Sprintf(
		"%s\nActions: %s\nSizes: %s\nBoards: %s",
		pterm.LightCyan(req.Positions.String()),
		strings.Join(actions, ", "),
		strings.Join(sizes, ", "),
		req.Filter.String(),
	)
}
