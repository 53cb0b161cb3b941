package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keys items by a single string hash attribute and answers
// equality queries on one index attribute.
type fakeDynamo struct {
	mu      sync.Mutex
	hashKey string
	items   map[string]map[string]types.AttributeValue
	indexes map[string]string
	err     error
}

func newFakeDynamo(hashKey string, indexes map[string]string) *fakeDynamo {
	return &fakeDynamo{
		hashKey: hashKey,
		items:   map[string]map[string]types.AttributeValue{},
		indexes: indexes,
	}
}

func stringAttr(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.items[stringAttr(in.Item[f.hashKey])] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[stringAttr(in.Key[f.hashKey])]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if in.IndexName == nil {
		return nil, errors.New("fake: query without index")
	}
	attr, ok := f.indexes[*in.IndexName]
	if !ok {
		return nil, errors.New("fake: unknown index " + *in.IndexName)
	}
	var want string
	for name, v := range in.ExpressionAttributeValues {
		if strings.HasPrefix(name, ":") {
			want = stringAttr(v)
		}
	}
	out := &dynamodb.QueryOutput{}
	for _, it := range f.items {
		if stringAttr(it[attr]) == want {
			out.Items = append(out.Items, it)
		}
	}
	return out, nil
}
