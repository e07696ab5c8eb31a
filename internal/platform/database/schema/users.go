package schema

// UsersTable represents the 'users' table
type UsersTable struct {
	Table     string
	Username  string
	Name      string
	AvatarURL string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:     "users",
	Username:  "username",
	Name:      "name",
	AvatarURL: "avatar_url",
}

func (t UsersTable) Columns() []string {
	return []string{t.Username, t.Name, t.AvatarURL}
}
