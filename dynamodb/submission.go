package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"sapientdcs/contactus"
	"sapientdcs/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrDuplicateRecord = errs.Errorf(errs.ECONFLICT, "dynamodb: record already exists")

// API is the subset of the dynamodb client used by the repositories.
type API interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type SubmissionRepository struct {
	client API
	table  string
}

type submissionItem struct {
	ID         string                `dynamodbav:"id"`
	ReceivedAt time.Time             `dynamodbav:"received_at"`
	Submission contactus.Submission  `dynamodbav:"submission"`
	PhoneE164  string                `dynamodbav:"phone_e164,omitempty"`
	Valid      bool                  `dynamodbav:"valid"`
	Contact    bool                  `dynamodbav:"contact_data_valid"`
	Existing   bool                  `dynamodbav:"contact_data_valid_for_existing_account"`
	Violations []contactus.Violation `dynamodbav:"violations"`
}

func NewSubmissionRepository(client API, table string) *SubmissionRepository {
	return &SubmissionRepository{
		client: client,
		table:  table,
	}
}

func (r *SubmissionRepository) CreateRecord(ctx context.Context, rec contactus.Record) error {
	if err := validateTable(r.table); err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(toSubmissionItem(rec))
	if err != nil {
		return fmt.Errorf("dynamodb: marshal submission: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &r.table,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	var conditionErr *types.ConditionalCheckFailedException
	if errors.As(err, &conditionErr) {
		return ErrDuplicateRecord
	}
	if err != nil {
		return fmt.Errorf("dynamodb: put submission: %w", err)
	}

	return nil
}

func (r *SubmissionRepository) AllRecords(ctx context.Context) ([]contactus.Record, error) {
	if err := validateTable(r.table); err != nil {
		return nil, err
	}

	records := make([]contactus.Record, 0)
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: &r.table,
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: scan submissions: %w", err)
		}

		var items []submissionItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("dynamodb: unmarshal submissions: %w", err)
		}
		for _, item := range items {
			records = append(records, item.toRecord())
		}
	}

	// scans are unordered
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ReceivedAt.Before(records[j].ReceivedAt)
	})
	return records, nil
}

func (r *SubmissionRepository) GetRecord(ctx context.Context, id string) (contactus.Record, error) {
	if err := validateTable(r.table); err != nil {
		return contactus.Record{}, err
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &r.table,
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return contactus.Record{}, fmt.Errorf("dynamodb: get submission: %w", err)
	}
	if len(out.Item) == 0 {
		return contactus.Record{}, contactus.ErrRecordNotFound
	}

	var item submissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return contactus.Record{}, fmt.Errorf("dynamodb: unmarshal submission: %w", err)
	}
	return item.toRecord(), nil
}

func toSubmissionItem(rec contactus.Record) submissionItem {
	return submissionItem{
		ID:         rec.ID,
		ReceivedAt: rec.ReceivedAt,
		Submission: rec.Submission,
		PhoneE164:  rec.PhoneE164,
		Valid:      rec.Outcome.Valid,
		Contact:    rec.Outcome.ContactDataValid,
		Existing:   rec.Outcome.ContactDataValidForExistingAccount,
		Violations: rec.Outcome.Violations,
	}
}

func (item submissionItem) toRecord() contactus.Record {
	violations := item.Violations
	if violations == nil {
		violations = []contactus.Violation{}
	}
	return contactus.Record{
		ID:         item.ID,
		ReceivedAt: item.ReceivedAt,
		Submission: item.Submission,
		PhoneE164:  item.PhoneE164,
		Outcome: contactus.Outcome{
			Valid:                              item.Valid,
			ContactDataValid:                   item.Contact,
			ContactDataValidForExistingAccount: item.Existing,
			Violations:                         violations,
		},
	}
}
