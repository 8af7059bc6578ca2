package responder

// Config holds the values injected into the root document.
// They are read from VITE_FIREBASE_* environment variables.
type Config struct {
	// FirebaseAPIKey is exposed as window.VITE_FIREBASE_API_KEY.
	FirebaseAPIKey string `mapstructure:"firebase_api_key" default:""`
	// FirebaseProjectID is exposed as window.VITE_FIREBASE_PROJECT_ID.
	FirebaseProjectID string `mapstructure:"firebase_project_id" default:""`
	// FirebaseAppID is exposed as window.VITE_FIREBASE_APP_ID.
	FirebaseAppID string `mapstructure:"firebase_app_id" default:""`
}

// Values are the immutable injection values shared by every request.
type Values struct {
	APIKey    string
	ProjectID string
	AppID     string
}

// Values converts the configuration into injection values.
func (c Config) Values() Values {
	return Values{
		APIKey:    c.FirebaseAPIKey,
		ProjectID: c.FirebaseProjectID,
		AppID:     c.FirebaseAppID,
	}
}

// Missing returns the names of the values that are empty.
func (v Values) Missing() []string {
	var missing []string
	if v.APIKey == "" {
		missing = append(missing, "VITE_FIREBASE_API_KEY")
	}
	if v.ProjectID == "" {
		missing = append(missing, "VITE_FIREBASE_PROJECT_ID")
	}
	if v.AppID == "" {
		missing = append(missing, "VITE_FIREBASE_APP_ID")
	}
	return missing
}
