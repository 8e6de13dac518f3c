package auth

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	apperrors "event-voting-backend/internal/errors"
	"event-voting-backend/internal/logger"

	"github.com/go-ldap/ldap/v3"
)

// ldapClient is the subset of *ldap.Conn used here
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
	SetTimeout(d time.Duration)
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	conn, err := ldap.DialTLS(network, addr, cfg)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// LDAPVerifier checks admin passwords by binding to the directory as the user
type LDAPVerifier struct {
	cfg *LDAPConfig
}

// NewLDAPVerifier creates a new LDAP verifier
func NewLDAPVerifier(cfg *LDAPConfig) *LDAPVerifier {
	return &LDAPVerifier{cfg: cfg}
}

// Verify looks the user up by mail with the service account, then binds as the found DN
func (v *LDAPVerifier) Verify(ctx context.Context, email, password string) error {
	if password == "" {
		// an empty password would be an unauthenticated bind
		return apperrors.ErrInvalidCredentials
	}

	addr := v.cfg.Host + ":" + v.cfg.Port
	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: v.cfg.InsecureSkipVerify})
	if err != nil {
		return fmt.Errorf("failed to connect to LDAP: %w", err)
	}
	defer l.Close()

	if v.cfg.TimeoutSec > 0 {
		l.SetTimeout(time.Duration(v.cfg.TimeoutSec) * time.Second)
	}

	if err := l.Bind(v.cfg.BindDN, v.cfg.BindPW); err != nil {
		return fmt.Errorf("failed to bind LDAP service account: %w", err)
	}

	req := ldap.NewSearchRequest(
		v.cfg.BaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		2,
		v.cfg.TimeoutSec,
		false,
		"(mail="+ldap.EscapeFilter(normalizeEmail(email))+")",
		[]string{"dn", "mail"},
		nil,
	)
	res, err := l.Search(req)
	if err != nil {
		return fmt.Errorf("failed to search LDAP: %w", err)
	}
	if len(res.Entries) != 1 {
		logger.WithContext(ctx).WithField("matches", len(res.Entries)).Debug("LDAP lookup did not resolve to a single user")
		return apperrors.ErrInvalidCredentials
	}

	if err := l.Bind(res.Entries[0].DN, password); err != nil {
		if ldap.IsErrorWithCode(err, ldap.LDAPResultInvalidCredentials) {
			return apperrors.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to bind LDAP user: %w", err)
	}
	return nil
}
