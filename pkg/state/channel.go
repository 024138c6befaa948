package state

import "tableflip.dev/moodsync/pkg/channel"

// ChannelPatch carries a partial channel update; nil fields are untouched.
type ChannelPatch struct {
	ID          string
	Name        *string
	Description *string
	Color       *string
	Icon        *string
	MemberCount *int
	Active      *bool
}

func setSelectedChannel(s ChannelSlice, id string) ChannelSlice {
	s.SelectedChannelID = id
	return s
}

func setChannels(s ChannelSlice, channels []channel.Channel) ChannelSlice {
	s.Channels = append([]channel.Channel(nil), channels...)
	return s
}

func addChannel(s ChannelSlice, c channel.Channel) ChannelSlice {
	s.Channels = append(append([]channel.Channel(nil), s.Channels...), c)
	return s
}

func updateChannel(s ChannelSlice, patch ChannelPatch) ChannelSlice {
	channels := append([]channel.Channel(nil), s.Channels...)
	for i := range channels {
		if channels[i].ID != patch.ID {
			continue
		}
		if patch.Name != nil {
			channels[i].Name = *patch.Name
		}
		if patch.Description != nil {
			channels[i].Description = *patch.Description
		}
		if patch.Color != nil {
			channels[i].Color = *patch.Color
		}
		if patch.Icon != nil {
			channels[i].Icon = *patch.Icon
		}
		if patch.MemberCount != nil {
			channels[i].MemberCount = *patch.MemberCount
		}
		if patch.Active != nil {
			channels[i].Active = *patch.Active
		}
	}
	s.Channels = channels
	return s
}

func updateMemberCount(s ChannelSlice, id string, count int) ChannelSlice {
	channels := append([]channel.Channel(nil), s.Channels...)
	for i := range channels {
		if channels[i].ID == id {
			channels[i].MemberCount = count
		}
	}
	s.Channels = channels
	return s
}

// SetSelectedChannel points the selection at id. The id is not required to
// resolve; a dangling pointer degrades to "no channel selected" on read.
func (c *Container) SetSelectedChannel(id string) {
	c.channel = setSelectedChannel(c.channel, id)
	if c.store != nil {
		c.store.SaveSelectedChannel(id)
	}
}

// SetChannels replaces the channel catalog wholesale.
func (c *Container) SetChannels(channels []channel.Channel) {
	c.channel = setChannels(c.channel, channels)
	c.persistChannels()
}

// AddChannel appends a channel to the catalog.
func (c *Container) AddChannel(ch channel.Channel) {
	c.channel = addChannel(c.channel, ch)
	c.persistChannels()
}

// UpdateChannel applies a partial update to the channel with patch.ID.
// Unknown ids are a no-op.
func (c *Container) UpdateChannel(patch ChannelPatch) {
	c.channel = updateChannel(c.channel, patch)
	c.persistChannels()
}

// UpdateMemberCount sets a channel's member count. Unknown ids are a no-op.
func (c *Container) UpdateMemberCount(id string, count int) {
	c.channel = updateMemberCount(c.channel, id, count)
	c.persistChannels()
}

func (c *Container) persistChannels() {
	if c.store != nil {
		c.store.SaveChannels(c.channel.Channels)
	}
}
