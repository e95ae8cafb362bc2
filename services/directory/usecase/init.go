package usecase

import (
	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
	"github.com/adnangitonga/diagnoxis/services/directory"
)

// DirectoryUC implements directory.DirectoryUC
type DirectoryUC struct {
	repo   directory.DirectoryRepo
	mailGW directory.MailGW
	cfg    *models.Config
}

// NewDirectoryUC creates a new directory usecase instance
func NewDirectoryUC(
	repo directory.DirectoryRepo,
	mailGW directory.MailGW,
	cfg *models.Config,
) *DirectoryUC {
	return &DirectoryUC{
		repo:   repo,
		mailGW: mailGW,
		cfg:    cfg,
	}
}
