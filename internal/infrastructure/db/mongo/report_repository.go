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
	collectionReports  = "reports"
	collectionCounters = "counters"
	reportCounterID    = "report_code"
)

type ReportRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		coll:     db.Collection(collectionReports),
		counters: db.Collection(collectionCounters),
	}
}

type mongoReport struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty"`
	Code           string              `bson:"code"`
	Title          string              `bson:"title"`
	Description    string              `bson:"description"`
	TechnicianName string              `bson:"technician_name"`
	Date           string              `bson:"date"`
	Status         domain.ReportStatus `bson:"status"`
	CreatedAt      time.Time           `bson:"created_at"`
	UpdatedAt      time.Time           `bson:"updated_at"`
}

func (mr *mongoReport) toDomain() *domain.Report {
	return &domain.Report{
		ID:             mr.ID.Hex(),
		Code:           mr.Code,
		Title:          mr.Title,
		Description:    mr.Description,
		TechnicianName: mr.TechnicianName,
		Date:           mr.Date,
		Status:         mr.Status,
		CreatedAt:      mr.CreatedAt,
		UpdatedAt:      mr.UpdatedAt,
	}
}

func fromDomainReport(r *domain.Report) mongoReport {
	return mongoReport{
		Code:           r.Code,
		Title:          r.Title,
		Description:    r.Description,
		TechnicianName: r.TechnicianName,
		Date:           r.Date,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromDomainReport(report))
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}

	created := *report
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id string) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReportNotFound
	}

	var mr mongoReport
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("find report: %w", err)
	}
	return mr.toDomain(), nil
}

// List returns reports matching filter in insertion order.
func (r *ReportRepository) List(ctx context.Context, filter ports.ListReportsFilter) ([]*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.TechnicianName != "" {
		query["technician_name"] = filter.TechnicianName
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []*domain.Report
	for cursor.Next(ctx) {
		var mr mongoReport
		if err := cursor.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode report: %w", err)
		}
		reports = append(reports, mr.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

func (r *ReportRepository) Update(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(report.ID)
	if err != nil {
		return nil, domain.ErrReportNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":           report.Title,
		"description":     report.Description,
		"technician_name": report.TechnicianName,
		"date":            report.Date,
		"status":          report.Status,
		"updated_at":      report.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrReportNotFound
	}
	return report, nil
}

func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReportNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

// NextCodeSeq atomically increments the report-code counter and returns the
// new value. Unlike a count-based scheme, the sequence never moves backwards,
// so codes stay unique under concurrent creation and after deletions.
func (r *ReportRepository) NextCodeSeq(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": reportCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next report code: %w", err)
	}
	return counter.Seq, nil
}

// EnsureIndexes creates the indexes the list and lookup paths rely on.
func (r *ReportRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "technician_name", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
