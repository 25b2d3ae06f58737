// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/danielhkuo/survey-scope/admin"
	"github.com/danielhkuo/survey-scope/aggregate"
	"github.com/danielhkuo/survey-scope/apiclient"
	"github.com/danielhkuo/survey-scope/cliparse"
	"github.com/danielhkuo/survey-scope/console"
	"github.com/danielhkuo/survey-scope/dashboard"
	"github.com/danielhkuo/survey-scope/models"
	"github.com/danielhkuo/survey-scope/schema"
	"github.com/danielhkuo/survey-scope/session"
	"github.com/danielhkuo/survey-scope/snapshot"
	"github.com/danielhkuo/survey-scope/submit"
)

func main() {
	cfg, args, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	// Ctrl-C cancels the context; in-flight requests die with it.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := session.NewWithToken(cfg.Token)
	api := apiclient.New(cfg.BackendURL, sess)

	matching := aggregate.MatchByText
	if os.Getenv("MATCH_BY_ID") == "1" {
		matching = aggregate.MatchByID
	}

	app := &app{cfg: cfg, sess: sess, api: api, loader: schema.NewLoader(api), matching: matching}

	var cmdErr error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "dashboard":
		cmdErr = app.runDashboard(ctx)
	case "view":
		cmdErr = app.runView(ctx, rest)
	case "data":
		cmdErr = app.runData(ctx, rest)
	case "respond":
		cmdErr = app.runRespond(ctx, rest)
	case "snapshot":
		cmdErr = app.runSnapshot(ctx, rest)
	case "admin":
		cmdErr = app.runAdmin(ctx, rest)
	case "login":
		cmdErr = app.runLogin(ctx, rest)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, cmdErr)
		os.Exit(1)
	}
}

const usage = `usage: survey-scope [flags] <command>

commands:
  dashboard                     list your surveys with counts
  view <id|code>                show a survey's questions and choices
  data <id|code>                browse aggregated responses interactively
  respond <id|code> q=answer…   submit answers (blank questions omitted)
  snapshot <id|code>            save aggregated views to the local store
  snapshot history <id|code>    list saved snapshots
  admin users|surveys           list users or all surveys
  admin delete-survey <id>      delete a survey and its dependents
  admin delete-user <id>        delete a user and their surveys
  login <email> <password>      sign in and print the session token`

type app struct {
	cfg      cliparse.Config
	sess     *session.Session
	api      *apiclient.Client
	loader   *schema.Loader
	matching aggregate.MatchStrategy
}

func (a *app) runDashboard(ctx context.Context) error {
	if a.cfg.UserID == 0 {
		return errors.New("dashboard needs a user id (use -u or USER_ID env)")
	}
	svc := dashboard.New(a.api, a.cfg.FanoutLimit)
	items, err := svc.Load(ctx, a.cfg.UserID)
	if err != nil {
		return fmt.Errorf("failed to load surveys: %w", err)
	}
	console.RenderDashboard(os.Stdout, items, dashboard.Sum(items))
	return nil
}

func (a *app) runView(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("view needs a survey id or short code")
	}
	bundle, err := a.loader.LoadBundle(ctx, args[0])
	if err != nil {
		return err
	}
	console.RenderSurveyHeader(os.Stdout, bundle.Survey)
	console.RenderQuestions(os.Stdout, bundle.Questions, bundle.Candidates)
	return nil
}

func (a *app) runData(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("data needs a survey id or short code")
	}
	bundle, err := a.loader.LoadBundle(ctx, args[0])
	if err != nil {
		return err
	}
	console.RenderSurveyHeader(os.Stdout, bundle.Survey)
	views := a.aggregateBundle(bundle)
	console.NewBrowser(views).Run(os.Stdin, os.Stdout)
	return nil
}

func (a *app) runRespond(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("respond needs a survey id or short code")
	}
	bundle, err := a.loader.LoadBundle(ctx, args[0])
	if err != nil {
		return err
	}

	values, err := parseAnswerArgs(args[1:], bundle)
	if err != nil {
		return err
	}

	flow := submit.NewFlow(a.api, bundle.Survey.ID)
	flow.Collect(bundle.Questions, values)
	if err := flow.Run(ctx); err != nil {
		var partial *submit.PartialError
		if errors.As(err, &partial) {
			return fmt.Errorf("partially submitted: %w", partial)
		}
		return fmt.Errorf("failed to submit: %w", err)
	}
	fmt.Printf("Submitted %s as responder %d. Thank you!\n", bundle.Survey.Name, flow.ResponderID())
	return nil
}

func (a *app) runSnapshot(ctx context.Context, args []string) error {
	history := len(args) > 1 && args[0] == "history"
	if history {
		args = args[1:]
	}
	if len(args) < 1 {
		return errors.New("snapshot needs a survey id or short code")
	}

	store, err := snapshot.Open(a.cfg.SnapshotDriver, a.cfg.SnapshotURL)
	if err != nil {
		return err
	}
	defer store.Close()

	survey, err := a.loader.ResolveSurvey(ctx, args[0])
	if err != nil {
		return err
	}

	if history {
		records, err := store.History(survey.ID)
		if err != nil {
			return err
		}
		console.RenderSnapshotHistory(os.Stdout, records)
		return nil
	}

	bundle, err := a.loader.LoadBundle(ctx, args[0])
	if err != nil {
		return err
	}
	views := a.aggregateBundle(bundle)
	id, err := store.Save(bundle.Survey.ID, bundle.Survey.ShortCode, views)
	if err != nil {
		return err
	}
	fmt.Printf("Saved snapshot %s (%d question views)\n", id, len(views))
	return nil
}

func (a *app) runAdmin(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("admin needs a subcommand: users, surveys, delete-survey, delete-user")
	}
	cons := admin.NewConsole(a.api)

	switch args[0] {
	case "users":
		console.RenderUsers(os.Stdout, cons.ListUsers(ctx))
		return nil
	case "surveys":
		console.RenderSurveys(os.Stdout, cons.ListSurveys(ctx))
		return nil
	case "delete-survey":
		if len(args) < 2 {
			return errors.New("delete-survey needs a survey id")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return errors.New("survey id must be numeric")
		}
		result, err := cons.DeleteSurveyCascade(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted survey %d (%d answers, %d responses removed)\n",
			id, result.AnswersDeleted, result.ResponsesDeleted)
		return nil
	case "delete-user":
		if len(args) < 2 {
			return errors.New("delete-user needs a user id")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return errors.New("user id must be numeric")
		}
		if err := cons.DeleteUser(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Deleted user %d\n", id)
		return nil
	}
	return fmt.Errorf("unknown admin subcommand %q", args[0])
}

func (a *app) runLogin(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("login needs an email and a password")
	}
	if err := a.sess.Login(ctx, a.api, args[0], args[1]); err != nil {
		return err
	}
	token, _ := a.sess.CurrentToken()
	fmt.Printf("Signed in. Export API_TOKEN=%s for later commands.\n", token)
	return nil
}

func (a *app) aggregateBundle(b schema.Bundle) []aggregate.QuestionView {
	return aggregate.AggregateAll(b.Questions, flattenCandidates(b), b.Responses, a.matching)
}

// parseAnswerArgs parses q=answer operands. The key is either a
// question id or its 1-based position; for choice questions the value
// may name a candidate id in #id form.
func parseAnswerArgs(args []string, b schema.Bundle) (map[int64]submit.FormInput, error) {
	values := make(map[int64]submit.FormInput)
	for _, arg := range args {
		key, val, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("answer %q is not in q=answer form", arg)
		}
		qid, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("answer key %q is not a question id", key)
		}
		// Accept a 1-based position when no question has that id.
		if !hasQuestion(b, qid) && qid >= 1 && int(qid) <= len(b.Questions) {
			qid = b.Questions[qid-1].ID
		}

		in := submit.FormInput{Text: val}
		if strings.HasPrefix(val, "#") {
			if cid, err := strconv.ParseInt(val[1:], 10, 64); err == nil {
				for _, c := range b.Candidates[qid] {
					if c.ID == cid {
						in = submit.FormInput{Text: c.Text, AnswerID: &c.ID}
						break
					}
				}
			}
		}
		values[qid] = in
	}
	return values, nil
}

func hasQuestion(b schema.Bundle, id int64) bool {
	for _, q := range b.Questions {
		if q.ID == id {
			return true
		}
	}
	return false
}

func flattenCandidates(b schema.Bundle) []models.CandidateAnswer {
	var all []models.CandidateAnswer
	for _, q := range b.Questions {
		all = append(all, b.Candidates[q.ID]...)
	}
	return all
}
