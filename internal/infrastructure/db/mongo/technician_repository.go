package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
	"github.com/carlosmateus/maintenance-system/internal/core/ports"
)

const (
	collectionSpecializations = "specializations"
	collectionContacts        = "contacts"
	collectionTechnicians     = "technicians"
)

// TechnicianRepository persists the roster. It holds the client as well as
// the database because Provision runs inside a multi-document transaction.
type TechnicianRepository struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewTechnicianRepository(client *mongo.Client, db *mongo.Database) *TechnicianRepository {
	return &TechnicianRepository{client: client, db: db}
}

type mongoSpecialization struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"created_at"`
}

type mongoContact struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	UserID primitive.ObjectID `bson:"user_id"`
	Phone  string             `bson:"phone"`
	Label  string             `bson:"label,omitempty"`
}

type mongoTechnician struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	UserID           primitive.ObjectID `bson:"user_id"`
	SpecializationID primitive.ObjectID `bson:"specialization_id"`
	RoleID           primitive.ObjectID `bson:"role_id"`
	CreatedAt        time.Time          `bson:"created_at"`
}

// Provision executes the onboarding writes inside a single transaction:
// specialization upsert, user insert, contact inserts, roster link. Any
// failure aborts the whole unit, so a login-capable account can never exist
// without its roster entry.
func (r *TechnicianRepository) Provision(ctx context.Context, rec ports.ProvisionRecord) (*domain.TechnicianRecord, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("provision: start session: %w", err)
	}
	defer session.EndSession(ctx)

	roleID, err := primitive.ObjectIDFromHex(rec.RoleID)
	if err != nil {
		return nil, fmt.Errorf("provision: bad role id: %w", err)
	}

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		now := time.Now().UTC()

		spec, err := r.upsertSpecialization(sc, rec.Specialization, now)
		if err != nil {
			return nil, err
		}

		userRes, err := r.db.Collection(collectionUsers).InsertOne(sc, mongoUser{
			Name:         rec.User.Name,
			Email:        rec.User.Email,
			PasswordHash: rec.User.PasswordHash,
			Role:         rec.User.Role,
			CreatedAt:    rec.User.CreatedAt,
			UpdatedAt:    rec.User.UpdatedAt,
		})
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrUserExists
			}
			return nil, fmt.Errorf("insert user: %w", err)
		}
		userID := userRes.InsertedID.(primitive.ObjectID)

		contacts := make([]domain.Contact, 0, len(rec.Contacts))
		for _, c := range rec.Contacts {
			contactRes, err := r.db.Collection(collectionContacts).InsertOne(sc, mongoContact{
				UserID: userID,
				Phone:  c.Phone,
				Label:  c.Label,
			})
			if err != nil {
				return nil, fmt.Errorf("insert contact: %w", err)
			}
			contactID, _ := contactRes.InsertedID.(primitive.ObjectID)
			contacts = append(contacts, domain.Contact{
				ID:     contactID.Hex(),
				UserID: userID.Hex(),
				Phone:  c.Phone,
				Label:  c.Label,
			})
		}

		techRes, err := r.db.Collection(collectionTechnicians).InsertOne(sc, mongoTechnician{
			UserID:           userID,
			SpecializationID: spec.ID,
			RoleID:           roleID,
			CreatedAt:        now,
		})
		if err != nil {
			return nil, fmt.Errorf("insert technician: %w", err)
		}
		techID, _ := techRes.InsertedID.(primitive.ObjectID)

		user := *rec.User
		user.ID = userID.Hex()
		return &domain.TechnicianRecord{
			ID:             techID.Hex(),
			User:           user.Public(),
			Specialization: spec.Name,
			Contacts:       contacts,
			CreatedAt:      now,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.TechnicianRecord), nil
}

// upsertSpecialization finds or creates the specialization by name. The
// unique name index makes repeated provisioning reuse one record.
func (r *TechnicianRepository) upsertSpecialization(ctx context.Context, name string, now time.Time) (*mongoSpecialization, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var spec mongoSpecialization
	err := r.db.Collection(collectionSpecializations).FindOneAndUpdate(
		ctx,
		bson.M{"name": name},
		bson.M{"$setOnInsert": bson.M{"name": name, "created_at": now}},
		opts,
	).Decode(&spec)
	if err != nil {
		return nil, fmt.Errorf("upsert specialization: %w", err)
	}
	return &spec, nil
}

// ListRoster returns every technician joined with their user, specialization
// and contacts.
func (r *TechnicianRepository) ListRoster(ctx context.Context) ([]*domain.TechnicianRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.db.Collection(collectionTechnicians).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list technicians: %w", err)
	}
	defer cursor.Close(ctx)

	var roster []*domain.TechnicianRecord
	for cursor.Next(ctx) {
		var mt mongoTechnician
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode technician: %w", err)
		}

		rec, err := r.assembleRecord(ctx, &mt)
		if err != nil {
			return nil, err
		}
		roster = append(roster, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list technicians: %w", err)
	}
	return roster, nil
}

func (r *TechnicianRepository) assembleRecord(ctx context.Context, mt *mongoTechnician) (*domain.TechnicianRecord, error) {
	var mu mongoUser
	if err := r.db.Collection(collectionUsers).FindOne(ctx, bson.M{"_id": mt.UserID}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("technician %s: %w", mt.ID.Hex(), domain.ErrUserNotFound)
		}
		return nil, fmt.Errorf("find technician user: %w", err)
	}

	var spec mongoSpecialization
	if err := r.db.Collection(collectionSpecializations).FindOne(ctx, bson.M{"_id": mt.SpecializationID}).Decode(&spec); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("find specialization: %w", err)
	}

	contactsCur, err := r.db.Collection(collectionContacts).Find(ctx, bson.M{"user_id": mt.UserID})
	if err != nil {
		return nil, fmt.Errorf("find contacts: %w", err)
	}
	defer contactsCur.Close(ctx)

	var contacts []domain.Contact
	for contactsCur.Next(ctx) {
		var mc mongoContact
		if err := contactsCur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode contact: %w", err)
		}
		contacts = append(contacts, domain.Contact{
			ID:     mc.ID.Hex(),
			UserID: mc.UserID.Hex(),
			Phone:  mc.Phone,
			Label:  mc.Label,
		})
	}

	return &domain.TechnicianRecord{
		ID:             mt.ID.Hex(),
		User:           mu.toDomain().Public(),
		Specialization: spec.Name,
		Contacts:       contacts,
		CreatedAt:      mt.CreatedAt,
	}, nil
}

// EnsureIndexes creates the uniqueness constraints provisioning relies on.
func (r *TechnicianRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.db.Collection(collectionSpecializations).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: uniqueIndex(),
	})
	if err != nil {
		return err
	}

	_, err = r.db.Collection(collectionTechnicians).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: uniqueIndex(),
	})
	return err
}
