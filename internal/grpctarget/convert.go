package grpctarget

import (
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/idl-tools/semcore/internal/value"
)

// populateRequest binds args, in the behavior's declared input order, to
// req's fields by position: the Nth declared field descriptor receives
// the Nth argument. This mirrors a positional RPC call shape rather than
// the teacher's named-Record shape (objectToDynamicMessage), since
// target.Hook.Invoke receives a plain []value.Value with no field names
// attached (§6: "args in declaration order").
func populateRequest(req *dynamic.Message, md *desc.MethodDescriptor, args []value.Value) error {
	fields := md.GetInputType().GetFields()
	for i, arg := range args {
		if i >= len(fields) {
			break
		}
		fd := fields[i]
		pv, err := valueToProto(arg, fd)
		if err != nil {
			return fmt.Errorf("field %s: %w", fd.GetName(), err)
		}
		if pv == nil {
			continue
		}
		if err := req.TrySetField(fd, pv); err != nil {
			return fmt.Errorf("field %s: %w", fd.GetName(), err)
		}
	}
	return nil
}

// messageToValue converts a fully-populated dynamic message into a
// value.Struct keyed by proto field name (§3: "Record" shape), mirroring
// the teacher's dynamicMessageToObject.
func messageToValue(msg *dynamic.Message) value.Value {
	fields := msg.GetMessageDescriptor().GetFields()
	out := make([]value.StructField, 0, len(fields))
	for _, fd := range fields {
		raw := msg.GetField(fd)
		out = append(out, value.StructField{Name: fd.GetName(), Value: protoToValue(raw, fd)})
	}
	return value.Struct{Name: msg.GetMessageDescriptor().GetName(), Fields: out}
}

// valueToProto converts one value.Value into the Go representation
// protoreflect's dynamic.Message expects for fd, returning nil (skip
// the field) when no reasonable conversion exists - an unsupported
// shape should not abort the whole request for fields the caller didn't
// care about.
func valueToProto(v value.Value, fd *desc.FieldDescriptor) (interface{}, error) {
	if fd.IsRepeated() {
		list, ok := v.(value.List)
		if !ok {
			return nil, nil
		}
		out := make([]interface{}, 0, len(list.Elements))
		for _, el := range list.Elements {
			pv, err := scalarToProto(el, fd)
			if err != nil {
				return nil, err
			}
			out = append(out, pv)
		}
		return out, nil
	}
	return scalarToProto(v, fd)
}

func scalarToProto(v value.Value, fd *desc.FieldDescriptor) (interface{}, error) {
	switch fd.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		s, ok := v.(value.String)
		if !ok {
			return nil, fmt.Errorf("expected String, got %T", v)
		}
		return string(s), nil
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		b, ok := v.(value.Bool)
		if !ok {
			return nil, fmt.Errorf("expected Bool, got %T", v)
		}
		return bool(b), nil
	case descriptorpb.FieldDescriptorProto_TYPE_INT32, descriptorpb.FieldDescriptorProto_TYPE_SINT32,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED32:
		n, ok := v.(value.Int)
		if !ok {
			return nil, fmt.Errorf("expected Int, got %T", v)
		}
		return int32(n.Int64()), nil
	case descriptorpb.FieldDescriptorProto_TYPE_INT64, descriptorpb.FieldDescriptorProto_TYPE_SINT64,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED64:
		n, ok := v.(value.Int)
		if !ok {
			return nil, fmt.Errorf("expected Int, got %T", v)
		}
		return n.Int64(), nil
	case descriptorpb.FieldDescriptorProto_TYPE_UINT32, descriptorpb.FieldDescriptorProto_TYPE_FIXED32:
		n, ok := v.(value.Int)
		if !ok {
			return nil, fmt.Errorf("expected Int, got %T", v)
		}
		return uint32(n.Uint64()), nil
	case descriptorpb.FieldDescriptorProto_TYPE_UINT64, descriptorpb.FieldDescriptorProto_TYPE_FIXED64:
		n, ok := v.(value.Int)
		if !ok {
			return nil, fmt.Errorf("expected Int, got %T", v)
		}
		return n.Uint64(), nil
	case descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
		d, ok := v.(value.Decimal)
		if !ok {
			return nil, fmt.Errorf("expected Decimal, got %T", v)
		}
		f, _ := d.Float64()
		return float32(f), nil
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:
		d, ok := v.(value.Decimal)
		if !ok {
			return nil, fmt.Errorf("expected Decimal, got %T", v)
		}
		f, _ := d.Float64()
		return f, nil
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		b, ok := v.(value.Bytes)
		if !ok {
			return nil, fmt.Errorf("expected Bytes, got %T", v)
		}
		return []byte(b), nil
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE:
		s, ok := v.(value.Struct)
		if !ok {
			return nil, fmt.Errorf("expected Struct for message field, got %T", v)
		}
		nested := dynamic.NewMessage(fd.GetMessageType())
		for _, nfd := range fd.GetMessageType().GetFields() {
			fv, ok := s.Get(nfd.GetName())
			if !ok {
				continue
			}
			pv, err := valueToProto(fv, nfd)
			if err != nil {
				return nil, err
			}
			if pv != nil {
				if err := nested.TrySetField(nfd, pv); err != nil {
					return nil, err
				}
			}
		}
		return nested, nil
	}
	return nil, fmt.Errorf("unsupported proto field type %v", fd.GetType())
}

// protoToValue converts a decoded field value back to value.Value,
// mirroring the teacher's convertFromProtoValue/convertFromProtoSingleValue.
func protoToValue(raw interface{}, fd *desc.FieldDescriptor) value.Value {
	if raw == nil {
		return value.Optional{Present: false}
	}
	if fd.IsRepeated() {
		slice, ok := raw.([]interface{})
		if !ok {
			return value.List{}
		}
		elems := make([]value.Value, len(slice))
		for i, el := range slice {
			elems[i] = scalarFromProto(el, fd)
		}
		return value.List{Elements: elems}
	}
	return scalarFromProto(raw, fd)
}

func scalarFromProto(raw interface{}, fd *desc.FieldDescriptor) value.Value {
	switch v := raw.(type) {
	case string:
		return value.String(v)
	case bool:
		return value.Bool(v)
	case int32:
		return value.NewInt(int64(v))
	case int64:
		return value.NewInt(v)
	case uint32:
		return value.NewInt(int64(v))
	case uint64:
		return value.NewInt(int64(v))
	case float32:
		return value.NewDecimal(float64(v))
	case float64:
		return value.NewDecimal(v)
	case []byte:
		return value.Bytes(v)
	case *dynamic.Message:
		return messageToValue(v)
	}
	return value.String(fmt.Sprintf("%v", raw))
}
