// Command matrixcalc opens the matrix calculator window.
//
// Settings are read from MATCALC_* environment variables; run with an
// invalid setting to see the full list.
package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/katalvlaran/matcalc/calculator"
	"github.com/katalvlaran/matcalc/config"
	"github.com/katalvlaran/matcalc/ui"
)

const appID = "io.github.katalvlaran.matcalc"

func main() {
	log.SetPrefix("matcalc: ")
	log.SetFlags(log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Print(err)
		if uerr := config.Usage(); uerr != nil {
			log.Print(uerr)
		}
		os.Exit(1)
	}

	c, err := calculator.New(cfg.Rows, cfg.Cols, calculator.WithLogger(log.Default()))
	if err != nil {
		log.Fatal(err)
	}

	w, _ := ui.NewMainWindow(app.NewWithID(appID), cfg, c)
	log.Printf("starting %dx%d calculator", cfg.Rows, cfg.Cols)
	w.ShowAndRun()
}
