package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	mem "cattle-farm-manager/internal/adapters/storage/memory"
	pg "cattle-farm-manager/internal/adapters/storage/postgres"
	"cattle-farm-manager/internal/domain/herds"
	"cattle-farm-manager/internal/domain/notifications"
	"cattle-farm-manager/internal/domain/pastures"
	"cattle-farm-manager/internal/domain/rotation"
	"cattle-farm-manager/internal/platform/clock"
)

var remindersOwner string

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Imprime rotaciones y cuidados pendientes de una cuenta",
	RunE: func(cmd *cobra.Command, args []string) error {
		owner := strings.TrimSpace(remindersOwner)
		if owner == "" {
			return errors.New("--owner is required")
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		db, err := openDB(cmd.Context())
		if err != nil {
			return err
		}

		var (
			pastureRepo pastures.Repository = mem.NewPastureRepo()
			herdRepo    herds.Repository    = mem.NewHerdRepo()
		)
		if db != nil {
			defer db.Close()
			pastureRepo = pg.NewPasturesRepo(db)
			herdRepo = pg.NewHerdsRepo(db, loc)
		}

		svc := rotation.NewService(pastureRepo, herdRepo, loc)
		ps, hs, err := svc.Snapshot(cmd.Context(), owner)
		if err != nil {
			return err
		}
		printReminders(cmd.OutOrStdout(), svc.Today(), ps, hs)
		return nil
	},
}

func init() {
	remindersCmd.Flags().StringVar(&remindersOwner, "owner", "", "id de la cuenta")
}

// printReminders lista primero el estado por rebaño y luego las alertas vigentes.
func printReminders(w io.Writer, today time.Time, ps []pastures.Pasture, hs []herds.Herd) {
	fmt.Fprintf(w, "Fecha: %s\n\n", clock.FormatDate(today))

	reports := rotation.EvaluateAll(today, ps, hs)
	if len(reports) == 0 {
		fmt.Fprintln(w, "Sin rebaños en potreros configurados.")
		return
	}
	for _, r := range reports {
		fmt.Fprintf(w, "%s (potrero %d)\n", r.HerdName, r.PastureNumber)
		for _, a := range rotation.Activities {
			c, ok := r.Countdowns[a]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "  %-8s %s\n", a, c.Label())
		}
	}

	reg := notifications.NewRegistry()
	notifications.Reconcile(reg, today, ps, hs)
	items := reg.List()
	fmt.Fprintf(w, "\nAlertas (%d):\n", len(items))
	for _, n := range items {
		fmt.Fprintf(w, "  - %s\n", n.Message)
	}
}
