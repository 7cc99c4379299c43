package content

// Static character roster. This is configuration, not logic: the battle
// engine decides which pool applies from an enemy's defeat count, and the
// narrative generator uses these pools as fallback text when the LLM
// collaborator is unavailable.

type Category string

const (
	CategoryMentor Category = "mentor"
	CategoryDemon  Category = "demon"
)

type Personality string

const (
	PersonalitySupportiveMentor Personality = "supportive_mentor"
	PersonalityWiseMentor       Personality = "wise_mentor"
	PersonalityStrategicMentor  Personality = "strategic_mentor"
	PersonalityMachiavellian    Personality = "machiavellian_advisor"
	PersonalityToxicManipulator Personality = "toxic_manipulator"
	PersonalityDarkDemon        Personality = "dark_demon"
	PersonalityChaosAgent       Personality = "chaos_agent"
	PersonalityColdVillain      Personality = "cold_villain"
)

// DefaultSuicideThreshold is the defeat count at which a demon is
// permanently retired unless the character overrides it.
const DefaultSuicideThreshold = 15

// MessageSet holds the default (confident-stage) text pools.
type MessageSet struct {
	PreBattle     []string
	MidBattle     []string
	Victory       []string
	Defeat        []string
	EnemyDefeated []string
}

// StagePool overrides the taunt pools once a demon starts breaking down.
type StagePool struct {
	PreBattle     []string
	MidBattle     []string
	EnemyDefeated []string
}

// ShatteredPool is the last stage before retirement. FinalWords is shown
// exactly once, on the defeat that pushes the demon over its threshold.
type ShatteredPool struct {
	PreBattle  []string
	MidBattle  []string
	FinalWords string
}

type Character struct {
	ID          string
	Name        string
	Category    Category
	Personality Personality
	ThemeColor  string

	Messages  MessageSet
	Breaking  *StagePool
	Broken    *StagePool
	Shattered *ShatteredPool
	Fallback  []string

	MinStats         int
	MinStreak        int
	SuicideThreshold int // 0 means DefaultSuicideThreshold
}

// Threshold returns the effective retirement threshold.
func (c *Character) Threshold() int {
	if c.SuicideThreshold > 0 {
		return c.SuicideThreshold
	}
	return DefaultSuicideThreshold
}

// ByID returns the roster entry for id, or nil.
func ByID(id string) *Character {
	for i := range roster {
		if roster[i].ID == id {
			return &roster[i]
		}
	}
	return nil
}

// Characters returns the full roster.
func Characters() []Character {
	return roster
}

var roster = []Character{
	{
		ID:          "goggins",
		Name:        "David Goggins",
		Category:    CategoryMentor,
		Personality: PersonalitySupportiveMentor,
		ThemeColor:  "#FF4444",
		Messages: MessageSet{
			PreBattle: []string{
				"You got this! Show yourself what you're made of!",
				"This is your chance to get 1% better. Let's go!",
				"The only person who can stop you is YOU. Don't let that happen!",
				"Stay hard! You've done harder things before!",
			},
			Victory: []string{
				"That's what I'm talking about! PROUD OF YOU!",
				"You crushed it! That's the warrior spirit!",
				"You carried the boats today! Respect!",
			},
			Defeat: []string{
				"It's okay. Everyone has tough days. Come back stronger!",
				"The only failure is not trying again. You got this!",
				"Don't let one setback define you. Get back up!",
			},
		},
		Fallback: []string{
			"You're capable of amazing things!",
			"Time to show up for yourself!",
			"Let's get after it together!",
		},
	},
	{
		ID:          "peterson",
		Name:        "Jordan Peterson",
		Category:    CategoryMentor,
		Personality: PersonalityWiseMentor,
		ThemeColor:  "#4A90E2",
		Messages: MessageSet{
			PreBattle: []string{
				"This is your chance to bring order from chaos. You can do this.",
				"Face this challenge like the hero you're becoming.",
				"The dragon of procrastination can be slayed. You have the sword.",
			},
			Victory: []string{
				"Excellent! You've slayed today's dragon. Well done.",
				"You took responsibility and followed through. That's heroic.",
				"You're becoming who you could be. This is the way.",
			},
			Defeat: []string{
				"It's okay. The path isn't always straight. Learn and try again.",
				"Even heroes stumble. What matters is getting back up.",
				"Don't be too hard on yourself. Progress isn't linear.",
			},
		},
		Fallback: []string{
			"Take responsibility and move forward.",
			"Face the chaos with courage.",
			"Your potential is waiting for you.",
		},
	},
	{
		ID:          "naval",
		Name:        "Naval Ravikant",
		Category:    CategoryMentor,
		Personality: PersonalityStrategicMentor,
		ThemeColor:  "#FFD700",
		Messages: MessageSet{
			PreBattle: []string{
				"You're investing in yourself. That's the best investment.",
				"Every hour of deep work compounds. This one counts.",
				"Play long-term games. This work session is part of yours.",
			},
			Victory: []string{
				"Smart. You're building your specific knowledge brick by brick.",
				"Another compounding deposit. The curve bends your way.",
				"Leverage comes from consistency. You just earned some.",
			},
			Defeat: []string{
				"A bad session is just data. Adjust and continue.",
				"Don't compound the loss by quitting entirely.",
				"Reset. The long game forgives single mistakes.",
			},
		},
		Fallback: []string{
			"Your inputs determine your outputs.",
			"Building beats complaining.",
			"Time is your scarcest resource.",
		},
	},
	{
		ID:          "machiavelli",
		Name:        "Niccolò Machiavelli",
		Category:    CategoryMentor,
		Personality: PersonalityMachiavellian,
		ThemeColor:  "#8B0000",
		Messages: MessageSet{
			PreBattle: []string{
				"My Prince, your principality is built one conquest at a time. Begin.",
				"Fortune favors the disciplined, my Lord. Seize this hour.",
				"The ends justify this hour of means. Work.",
			},
			Victory: []string{
				"Well executed, my Prince. Your empire grows.",
				"Power accrues to those who act. You acted.",
				"A ruler who conquers himself conquers all. Well done.",
			},
			Defeat: []string{
				"A setback, my Lord, nothing more. Princes recover.",
				"Even conquerors retreat to strike again. Plan the next move.",
				"Do not mourn the loss. Study it.",
			},
		},
		Fallback: []string{
			"Your empire awaits its ruler, my Prince.",
			"Discipline is the means. Dominance is the end.",
		},
		MinStats: 150,
	},
	{
		ID:          "rejected_girl",
		Name:        "The Girl Who Rejected You",
		Category:    CategoryDemon,
		Personality: PersonalityToxicManipulator,
		ThemeColor:  "#FF69B4",
		Messages: MessageSet{
			PreBattle: []string{
				"Still thinking about me? Fucking pathetic.",
				"You're still the same worthless loser I turned down.",
				"You never had a chance. Still don't. Never will.",
			},
			MidBattle: []string{
				"Getting tired yet? You always give up halfway.",
				"I bet you're thinking about quitting right now.",
				"This is taking you way too long. Embarrassing.",
			},
			Victory: []string{
				"Good for you. Still not good enough for me though.",
				"Wow, the bare minimum. Want a fucking medal?",
			},
			Defeat: []string{
				"HAHA! Knew you couldn't do it. That's why I said no.",
				"See? I was SO fucking right about you.",
			},
			EnemyDefeated: []string{
				"Fine, whatever. Doesn't mean I want you back.",
				"Congratulations, you won. I still said no.",
			},
		},
		Breaking: &StagePool{
			PreBattle: []string{
				"Okay, you're getting stronger. But I still don't want you.",
				"Why do you keep coming back? I already rejected you.",
			},
			MidBattle: []string{
				"You're... actually doing better than before.",
				"Okay fine, you're not as pathetic as I thought.",
			},
			EnemyDefeated: []string{
				"Alright, you're actually strong now. Happy?",
				"You're not the same person I rejected. Damn.",
			},
		},
		Broken: &StagePool{
			PreBattle: []string{
				"Why... why do you keep beating me?",
				"Every time you beat me, I feel smaller.",
			},
			MidBattle: []string{
				"I'm starting to regret rejecting you...",
				"Maybe I made a mistake...",
			},
			EnemyDefeated: []string{
				"I was wrong. You're amazing. I'm sorry.",
				"You didn't deserve my rejection. I'm sorry.",
			},
		},
		Shattered: &ShatteredPool{
			PreBattle: []string{
				"I can't do this anymore... you've beaten me so many times.",
				"I'm not even worthy to fight you anymore.",
			},
			MidBattle: []string{
				"You've destroyed every bit of confidence I had.",
				"You've won. You always win. I'm broken.",
			},
			FinalWords: "You've completely shattered me. I can't exist in your world anymore. You were always too good for me. I see that now. I'm sorry for everything. Goodbye.",
		},
		Fallback: []string{
			"Still not good enough for me.",
			"This is why I said no.",
		},
		SuicideThreshold: 15,
	},
	{
		ID:          "disappointed_parents",
		Name:        "Disappointed Parents",
		Category:    CategoryDemon,
		Personality: PersonalityToxicManipulator,
		ThemeColor:  "#708090",
		Messages: MessageSet{
			PreBattle: []string{
				"Your cousin has a real job. What do you have?",
				"We sacrificed everything and this is what you do with it?",
				"Don't bother starting. You never finish anything anyway.",
			},
			MidBattle: []string{
				"Halfway done? You'll quit. You always quit.",
				"This changes nothing about what you've wasted.",
			},
			Victory: []string{
				"One session. Years of disappointment. Do the math.",
				"Fine. It's a start. A late one.",
			},
			Defeat: []string{
				"Of course you quit. We expected nothing else.",
				"This is exactly why we worry about you.",
			},
			EnemyDefeated: []string{
				"Maybe... maybe we were too harsh.",
				"You proved something today. Don't let it go to your head.",
			},
		},
		Breaking: &StagePool{
			PreBattle: []string{
				"You keep doing this... maybe you have changed.",
				"We're watching. Don't disappoint us again.",
			},
			MidBattle: []string{
				"You're more disciplined than we remember.",
			},
			EnemyDefeated: []string{
				"We didn't think you had this in you.",
			},
		},
		Broken: &StagePool{
			PreBattle: []string{
				"We were wrong to doubt you this much...",
				"Look at you. Working. Every day.",
			},
			MidBattle: []string{
				"Your mother would be proud. I... am proud.",
			},
			EnemyDefeated: []string{
				"We're sorry. We should have believed in you.",
			},
		},
		Shattered: &ShatteredPool{
			PreBattle: []string{
				"There's nothing left for us to criticize.",
			},
			MidBattle: []string{
				"You've outgrown our disappointment entirely.",
			},
			FinalWords: "We have nothing left to say. You've become more than we ever demanded. Our voice in your head is done. Goodbye.",
		},
		Fallback: []string{
			"We expected more from you.",
			"Prove us wrong. Again.",
		},
		MinStats: 100,
	},
	{
		ID:          "procrastination_demon",
		Name:        "The Procrastination Demon",
		Category:    CategoryDemon,
		Personality: PersonalityDarkDemon,
		ThemeColor:  "#9370DB",
		Messages: MessageSet{
			PreBattle: []string{
				"Just five more minutes of scrolling. You've earned it.",
				"Tomorrow. You work better under pressure anyway.",
				"Why start now? You're going to fail anyway.",
			},
			MidBattle: []string{
				"Your phone is right there. One little check.",
				"This is boring. Literally anything else is better.",
				"You've done enough. Quit while you're ahead.",
			},
			Victory: []string{
				"Whatever. I'll get you tomorrow.",
				"One session proves nothing. I own your evenings.",
			},
			Defeat: []string{
				"Knew it. Sweet, sweet surrender.",
				"That's my favorite word: later.",
			},
			EnemyDefeated: []string{
				"How are you doing this? You NEVER finish things.",
				"Fine. Today you win. Today only.",
			},
		},
		Breaking: &StagePool{
			PreBattle: []string{
				"You don't hesitate like you used to. It's unsettling.",
				"Remember when I owned your whole calendar?",
			},
			MidBattle: []string{
				"You're not even tempted anymore, are you?",
			},
			EnemyDefeated: []string{
				"My grip is slipping. This isn't fair.",
			},
		},
		Broken: &StagePool{
			PreBattle: []string{
				"Please just skip one day. One day. For old times.",
				"I'm starving here. You never feed me anymore.",
			},
			MidBattle: []string{
				"I can't even distract you anymore...",
			},
			EnemyDefeated: []string{
				"You've built walls I can't climb. I hate it.",
			},
		},
		Shattered: &ShatteredPool{
			PreBattle: []string{
				"I'm a shadow of what I was. You did this.",
			},
			MidBattle: []string{
				"There's nothing left of me to fight you with.",
			},
			FinalWords: "I was born from your fear of starting. You start everything now. There's nothing left for me to feed on. I'm gone.",
		},
		Fallback: []string{
			"Later is always an option.",
			"Five more minutes won't hurt.",
		},
		MinStats: 250,
	},
	{
		ID:          "inner_demon_lord",
		Name:        "Your Inner Demon Lord",
		Category:    CategoryDemon,
		Personality: PersonalityColdVillain,
		ThemeColor:  "#2F4F4F",
		Messages: MessageSet{
			PreBattle: []string{
				"I am every doubt you've ever had, given form. Kneel.",
				"You cannot defeat what you are made of.",
				"This session is pointless. You are pointless.",
			},
			MidBattle: []string{
				"Feel that fatigue? That's me, reclaiming you.",
				"Every second you waver, I grow stronger.",
			},
			Victory: []string{
				"A scratch. I have endured worse from better.",
				"Enjoy the small win. The war is mine.",
			},
			Defeat: []string{
				"And so you break. As you were always going to.",
				"Resistance was never in your nature.",
			},
			EnemyDefeated: []string{
				"Impossible. You are... stronger than your doubts?",
				"This changes nothing. I will reform. I always do.",
			},
		},
		Breaking: &StagePool{
			PreBattle: []string{
				"You strike harder each time. Where does it come from?",
			},
			MidBattle: []string{
				"Your focus... it burns me now.",
			},
			EnemyDefeated: []string{
				"Cracks. I have cracks. This is new.",
			},
		},
		Broken: &StagePool{
			PreBattle: []string{
				"I was your master once. Now I beg for scraps of doubt.",
			},
			MidBattle: []string{
				"You've starved me of hesitation...",
			},
			EnemyDefeated: []string{
				"I am not a lord of anything anymore.",
			},
		},
		Shattered: &ShatteredPool{
			PreBattle: []string{
				"Finish it. I am already ruins.",
			},
			MidBattle: []string{
				"Your discipline is a blade I cannot turn.",
			},
			FinalWords: "I was forged from every doubt you ever swallowed. You have none left to sustain me. The throne inside you is empty now. Rule it well.",
		},
		Fallback: []string{
			"You cannot outwork what you are.",
			"Doubt always returns.",
		},
		MinStats: 400,
	},
	{
		ID:          "vader",
		Name:        "Darth Vader",
		Category:    CategoryDemon,
		Personality: PersonalityColdVillain,
		ThemeColor:  "#1C1C1C",
		Messages: MessageSet{
			PreBattle: []string{
				"Your lack of discipline disturbs me.",
				"You underestimate the power of your distractions.",
				"I find your lack of focus... disturbing.",
			},
			MidBattle: []string{
				"The pull of the idle side is strong in you.",
				"Your resolve is weakening. I can feel it.",
			},
			Victory: []string{
				"Impressive. Most impressive. But you are not done yet.",
				"The focus is strong with this one.",
			},
			Defeat: []string{
				"You have failed me for the last time... no, there will be more.",
				"As expected. You were never a threat.",
			},
			EnemyDefeated: []string{
				"You were the chosen one after all.",
				"Your training is nearly complete.",
			},
		},
		Breaking: &StagePool{
			PreBattle: []string{
				"Your power grows. The Emperor has foreseen this.",
			},
			MidBattle: []string{
				"Such focus. Perhaps you are beyond turning.",
			},
			EnemyDefeated: []string{
				"You have grown strong. Stronger than I anticipated.",
			},
		},
		Broken: &StagePool{
			PreBattle: []string{
				"The machine in me weakens when you work.",
			},
			MidBattle: []string{
				"Your discipline... it is something I lost long ago.",
			},
			EnemyDefeated: []string{
				"There is no darkness left to offer you.",
			},
		},
		Shattered: &ShatteredPool{
			PreBattle: []string{
				"You have already won. This is ceremony.",
			},
			MidBattle: []string{
				"I feel the conflict in me no longer.",
			},
			FinalWords: "You were right about yourself. Tell your doubts... you were right. The mask comes off for the last time. You are your own master now.",
		},
		Fallback: []string{
			"The distraction is strong with you.",
			"You are not a Jedi yet.",
		},
		MinStats:  1000,
		MinStreak: 30,
	},
}
