package repository

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// marshalRecord/unmarshalRecord reuse the entities' json tags as the
// DynamoDB attribute names so the wire shape and the storage shape stay
// identical.

func marshalRecord(v any) (map[string]types.AttributeValue, error) {
	enc := attributevalue.NewEncoder(func(o *attributevalue.EncoderOptions) {
		o.TagKey = "json"
	})
	av, err := enc.Encode(v)
	if err != nil {
		return nil, err
	}
	m, ok := av.(*types.AttributeValueMemberM)
	if !ok {
		return nil, fmt.Errorf("expected map attribute, got %T", av)
	}
	return m.Value, nil
}

func unmarshalRecord(item map[string]types.AttributeValue, out any) error {
	dec := attributevalue.NewDecoder(func(o *attributevalue.DecoderOptions) {
		o.TagKey = "json"
	})
	return dec.Decode(&types.AttributeValueMemberM{Value: item}, out)
}
