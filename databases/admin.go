package databases

//go generate: mockery --name AdminDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/stressbuster/stressbuster-api/models"
)

const adminName = "admin_users"

// AdminDatabase contains the methods to use with the admin user database
type AdminDatabase interface {
	InsertOne(ctx context.Context, a models.AdminUser) (*models.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	TouchLastLogin(ctx context.Context, id string) error
}

type adminDatabase struct {
	db DatabaseHelper
}

// NewAdminDatabase initializes a new instance of admin database with the provided db connection
func NewAdminDatabase(db DatabaseHelper) AdminDatabase {
	return &adminDatabase{
		db: db,
	}
}

func (a *adminDatabase) InsertOne(ctx context.Context, admin models.AdminUser) (*models.AdminUser, error) {
	if admin.ID == "" {
		admin.ID = NewID()
	}
	if _, err := a.db.Collection(adminName).InsertOne(ctx, admin); err != nil {
		return nil, translateError(err)
	}
	return &admin, nil
}

func (a *adminDatabase) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	admin := &models.AdminUser{}
	if err := a.db.Collection(adminName).FindOne(ctx, bson.M{"email": email}).Decode(admin); err != nil {
		return nil, translateError(err)
	}
	return admin, nil
}

func (a *adminDatabase) TouchLastLogin(ctx context.Context, id string) error {
	_, err := a.db.Collection(adminName).UpdateOne(ctx, bson.M{"_id": id}, set(bson.M{"lastLogin": now()}))
	return translateError(err)
}
