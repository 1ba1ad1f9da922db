package http

import (
	"encoding/json"

	"github.com/vibechat/vibechat-server/internal/core"
	"github.com/vibechat/vibechat-server/internal/proto"
)

// inboundToCommand decodes a client envelope into a core command.
// Validation of usernames and rooms belongs to the hub; this layer only
// translates. A non-nil *proto.Outbound is a protocol-level reply to
// send directly, a non-nil error tears the connection down.
func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Outbound, error) {
	switch inbound.Event {
	case proto.InboundSetUsername:
		username, err := decodeString(inbound.Data)
		if err != nil {
			return nil, nil, err
		}
		return &core.Command{Kind: core.CommandSetUsername, Username: username}, nil, nil
	case proto.InboundRequestRoom:
		room, err := decodeString(inbound.Data)
		if err != nil {
			return nil, nil, err
		}
		return &core.Command{Kind: core.CommandJoinRoom, Room: room}, nil, nil
	case proto.InboundSendMessage:
		var data proto.SendMessageData
		if len(inbound.Data) > 0 {
			if err := json.Unmarshal(inbound.Data, &data); err != nil {
				return nil, nil, err
			}
		}
		return &core.Command{Kind: core.CommandSendMessage, Text: data.Content}, nil, nil
	case proto.InboundTyping:
		return &core.Command{Kind: core.CommandTyping}, nil, nil
	case proto.InboundStopTyping:
		return &core.Command{Kind: core.CommandStopTyping}, nil, nil
	default:
		return nil, &proto.Outbound{Event: proto.OutboundError, Data: "unknown event"}, nil
	}
}

func decodeString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomMessage:
		return proto.Outbound{
			Event: proto.OutboundMessage,
			Data: proto.EventMessage{
				Seq:      event.Message.Seq,
				Username: event.Message.From,
				Content:  event.Message.Text,
				TS:       event.Message.CreatedAt.Unix(),
			},
		}
	case core.EventHistory:
		messages := make([]proto.EventMessage, 0, len(event.Messages))
		for _, msg := range event.Messages {
			messages = append(messages, proto.EventMessage{
				Seq:      msg.Seq,
				Username: msg.From,
				Content:  msg.Text,
				TS:       msg.CreatedAt.Unix(),
			})
		}
		return proto.Outbound{Event: proto.OutboundRoom, Data: messages}
	case core.EventTyping:
		return proto.Outbound{Event: proto.OutboundTyping, Data: event.User}
	case core.EventStopTyping:
		return proto.Outbound{Event: proto.OutboundStopTyping, Data: event.User}
	case core.EventError:
		if event.Error == nil {
			return proto.Outbound{Event: proto.OutboundError, Data: "unknown error"}
		}
		return proto.Outbound{Event: proto.OutboundError, Data: event.Error.Message}
	default:
		return proto.Outbound{Event: proto.OutboundError, Data: "unknown event kind"}
	}
}
