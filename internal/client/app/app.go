package app

import (
	"context"

	"github.com/dailyjournal-app/daily-journal/internal/client/api"
	"github.com/dailyjournal-app/daily-journal/internal/client/iocli"
	"github.com/dailyjournal-app/daily-journal/internal/client/session"
)

// App drives the two views: the anonymous login/register menu and the
// authenticated dashboard. A session ends on logout or when the server
// rejects the token, and the app drops back to the anonymous view.
type App struct {
	api      *api.Client
	sessions *session.Store
	io       iocli.IO
}

func New(apiClient *api.Client, sessions *session.Store, io iocli.IO) *App {
	return &App{api: apiClient, sessions: sessions, io: io}
}

// Run is the top-level view loop. It resumes a stored session if one
// exists, otherwise starts at the anonymous view. Returns when the user
// quits or input is exhausted.
func (a *App) Run(ctx context.Context) error {
	if token, username, err := a.sessions.Load(); err == nil && token != "" {
		a.api.SetToken(token)
		a.io.Printf("Welcome back, %s!\n", username)
		if quit := a.runDashboard(ctx); quit {
			return nil
		}
	}

	for {
		a.io.Println("")
		a.io.Println("📒 Daily Journal")
		a.io.Println("1) Login")
		a.io.Println("2) Register")
		a.io.Println("q) Quit")
		choice, err := a.io.ReadInput("> ")
		if err != nil {
			return nil
		}

		switch choice {
		case "1", "login":
			if a.runLogin(ctx) {
				if quit := a.runDashboard(ctx); quit {
					return nil
				}
			}
		case "2", "register":
			a.runRegister(ctx)
		case "q", "quit", "exit":
			return nil
		default:
			a.io.Println("Unknown option")
		}
	}
}

// runLogin prompts for credentials and exchanges them for a session token.
// Returns true when the dashboard should open.
func (a *App) runLogin(ctx context.Context) bool {
	username, err := a.io.ReadInput("Username: ")
	if err != nil {
		return false
	}
	password, err := a.io.ReadPassword("Password: ")
	if err != nil {
		return false
	}

	resp, err := a.api.Login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		a.io.Printf("Login failed: %v\n", err)
		return false
	}

	a.api.SetToken(resp.Token)
	if err := a.sessions.Save(resp.Token, resp.Username); err != nil {
		a.io.Printf("Warning: could not persist session: %v\n", err)
	}
	a.io.Println("Login successful!")
	return true
}

// runRegister creates an account and returns to the anonymous menu; like
// the web app, the user logs in as a separate step.
func (a *App) runRegister(ctx context.Context) {
	username, err := a.io.ReadInput("Username: ")
	if err != nil {
		return
	}
	password, err := a.io.ReadPassword("Password: ")
	if err != nil {
		return
	}

	if err := a.api.Register(ctx, api.Credentials{Username: username, Password: password}); err != nil {
		a.io.Printf("Registration failed: %v\n", err)
		return
	}
	a.io.Println("Registration successful! You can now log in.")
}

// endSession clears the held token and the stored session. Local only; the
// server is stateless.
func (a *App) endSession() {
	a.api.ClearToken()
	if err := a.sessions.Clear(); err != nil {
		a.io.Printf("Warning: could not clear stored session: %v\n", err)
	}
}
