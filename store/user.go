package store

// SetToken stores the auth token. Authenticated status follows the token
// alone here, matching the login/logout flows that always set both.
func (s *Store) SetToken(token string) {
	s.set(func(st *State) {
		st.User.Token = token
		st.User.IsAuthenticated = token != ""
	})
}

// SetProfile stores the user profile. A token or a profile is enough to
// count as authenticated.
func (s *Store) SetProfile(p *UserProfile) {
	s.set(func(st *State) {
		var profile *UserProfile
		if p != nil {
			c := *p
			profile = &c
		}
		st.User.Profile = profile
		st.User.IsAuthenticated = st.User.Token != "" || profile != nil
	})
}

// Logout resets the session to anonymous.
func (s *Store) Logout() {
	s.set(func(st *State) {
		st.User = UserState{}
	})
}

func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User.IsAuthenticated
}

// UserID returns the profile id, or "" when there is no profile.
func (s *Store) UserID() ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User.Profile == nil {
		return ""
	}
	return s.state.User.Profile.ID
}

// User returns a snapshot of the session slice.
func (s *Store) User() UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.state.User
	if u.Profile != nil {
		c := *u.Profile
		u.Profile = &c
	}
	return u
}
