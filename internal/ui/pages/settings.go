package pages

import (
	"context"
	"net/mail"
	"strings"

	"admin-dashboard/internal/layout"
	"admin-dashboard/internal/store"
	"admin-dashboard/internal/types"
	"admin-dashboard/internal/ui/components"

	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	labelDisplayName = "Display Name"
	labelEmail       = "Email Address"
)

var notificationSettings = []string{"Email Notifications", "Push Notifications", "SMS Alerts", "Weekly Reports"}

// Settings is the /settings page
type Settings struct {
	*tview.Flex
	profile       *tview.Form
	notifications *tview.Form
	danger        *tview.Form
	status        *tview.TextView

	name  *tview.InputField
	email *tview.InputField
	// enabled holds the notification toggles. They live as long as the page.
	enabled map[string]bool

	auth *store.AuthStore
	log  *zap.Logger
}

func NewSettings(auth *store.AuthStore, log *zap.Logger) *Settings {
	s := &Settings{
		status:  tview.NewTextView(),
		enabled: make(map[string]bool, len(notificationSettings)),
		auth:    auth,
		log:     log,
	}
	s.status.SetDynamicColors(true)

	s.profile = tview.NewForm().
		AddInputField(labelDisplayName, "", 32, nil, nil).
		AddInputField(labelEmail, "", 32, nil, nil).
		AddButton("Save Changes", s.Save).
		AddButton("Cancel", s.Cancel)
	s.profile.SetBorder(true).SetTitle(" Profile Settings ").SetTitleAlign(tview.AlignLeft)
	s.name = s.profile.GetFormItemByLabel(labelDisplayName).(*tview.InputField)
	s.email = s.profile.GetFormItemByLabel(labelEmail).(*tview.InputField)

	s.notifications = tview.NewForm()
	for _, label := range notificationSettings {
		s.enabled[label] = true
		s.notifications.AddCheckbox(label, true, func(checked bool) {
			s.enabled[label] = checked
		})
	}
	s.notifications.SetBorder(true).SetTitle(" Notifications ").SetTitleAlign(tview.AlignLeft)

	s.danger = tview.NewForm().AddButton("Delete Account", s.DeleteAccount)
	s.danger.SetBorder(true).SetTitle(" [#eb6f92]Danger Zone[-] ").SetTitleAlign(tview.AlignLeft)

	s.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(components.CreatePageHeader("Settings", "Manage your account and preferences"), 3, 0, false).
		AddItem(s.profile, 9, 0, true).
		AddItem(s.status, 1, 0, false).
		AddItem(s.notifications, 2*len(notificationSettings)+2, 0, false).
		AddItem(s.danger, 5, 0, false)
	return s
}

func (s *Settings) Route() types.Route { return types.RouteSettings }

// Mount clears the form, as a fresh page would be
func (s *Settings) Mount(context.Context) {
	s.Cancel()
}

func (s *Settings) Unmount() {}

// Apply refreshes the placeholders from the signed in user
func (s *Settings) Apply(layout.Mode) {
	user := s.auth.User()
	if user == nil {
		s.name.SetPlaceholder("")
		s.email.SetPlaceholder("")
		return
	}
	s.name.SetPlaceholder(user.Name)
	s.email.SetPlaceholder(user.Email)
}

// Save merges the non-empty fields into the signed in user
func (s *Settings) Save() {
	if s.auth.User() == nil {
		s.setStatus("[#eb6f92]Sign in to change your profile.[-]")
		return
	}

	var patch types.UserPatch
	if name := strings.TrimSpace(s.name.GetText()); name != "" {
		patch.Name = &name
	}
	if email := strings.TrimSpace(s.email.GetText()); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			s.setStatus("[#eb6f92]Enter a valid email address.[-]")
			return
		}
		patch.Email = &email
	}
	if patch.Name == nil && patch.Email == nil {
		s.setStatus("[#6e6a86]Nothing to save.[-]")
		return
	}

	s.auth.UpdateUser(patch)
	s.log.Info("profile updated")
	s.name.SetText("")
	s.email.SetText("")
	s.setStatus("[#9ccfd8]Profile saved.[-]")
}

// Cancel clears the inputs
func (s *Settings) Cancel() {
	s.name.SetText("")
	s.email.SetText("")
	s.setStatus("")
}

// DeleteAccount never deletes anything
func (s *Settings) DeleteAccount() {
	s.log.Warn("account deletion requested")
	s.setStatus("[#eb6f92]Account deletion is disabled in this demo.[-]")
}

// Notification reports whether the named notification toggle is on
func (s *Settings) Notification(label string) bool {
	return s.enabled[label]
}

func (s *Settings) setStatus(text string) {
	s.status.SetText(text)
}
