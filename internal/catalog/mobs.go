package catalog

// Mob types as reported in nearby-entity names.
const (
	MobBat                 MobType = "Bat"
	MobBlaze               MobType = "Blaze"
	MobCaveSpider          MobType = "CaveSpider"
	MobChicken             MobType = "Chicken"
	MobCow                 MobType = "Cow"
	MobCreeper             MobType = "Creeper"
	MobDonkey              MobType = "Donkey"
	MobElderGuardian       MobType = "ElderGuardian"
	MobEnderDragon         MobType = "EnderDragon"
	MobEnderman            MobType = "Enderman"
	MobEndermite           MobType = "Endermite"
	MobEvocationVillager   MobType = "EvocationIllager"
	MobGhast               MobType = "Ghast"
	MobGiant               MobType = "Giant"
	MobGuardian            MobType = "Guardian"
	MobHorse               MobType = "Horse"
	MobHusk                MobType = "Husk"
	MobLavaSlime           MobType = "LavaSlime"
	MobLlama               MobType = "Llama"
	MobMule                MobType = "Mule"
	MobMushroomCow         MobType = "MushroomCow"
	MobOzelot              MobType = "Ozelot"
	MobPig                 MobType = "Pig"
	MobPigZombie           MobType = "PigZombie"
	MobPolarBear           MobType = "PolarBear"
	MobRabbit              MobType = "Rabbit"
	MobSheep               MobType = "Sheep"
	MobShulker             MobType = "Shulker"
	MobSilverfish          MobType = "Silverfish"
	MobSkeleton            MobType = "Skeleton"
	MobSkeletonHorse       MobType = "SkeletonHorse"
	MobSlime               MobType = "Slime"
	MobSnowman             MobType = "SnowMan"
	MobSpider              MobType = "Spider"
	MobSquid               MobType = "Squid"
	MobStray               MobType = "Stray"
	MobVex                 MobType = "Vex"
	MobVillager            MobType = "Villager"
	MobVillagerGolem       MobType = "VillagerGolem"
	MobVindicationVillager MobType = "VindicationIllager"
	MobWitch               MobType = "Witch"
	MobWitherBoss          MobType = "WitherBoss"
	MobWitherSkeleton      MobType = "WitherSkeleton"
	MobWolf                MobType = "Wolf"
	MobZombie              MobType = "Zombie"
	MobZombieHorse         MobType = "ZombieHorse"
	MobZombieVillager      MobType = "ZombieVillager"
)

var mobTypes = []MobType{
	MobBat,
	MobBlaze,
	MobCaveSpider,
	MobChicken,
	MobCow,
	MobCreeper,
	MobDonkey,
	MobElderGuardian,
	MobEnderDragon,
	MobEnderman,
	MobEndermite,
	MobEvocationVillager,
	MobGhast,
	MobGiant,
	MobGuardian,
	MobHorse,
	MobHusk,
	MobLavaSlime,
	MobLlama,
	MobMule,
	MobMushroomCow,
	MobOzelot,
	MobPig,
	MobPigZombie,
	MobPolarBear,
	MobRabbit,
	MobSheep,
	MobShulker,
	MobSilverfish,
	MobSkeleton,
	MobSkeletonHorse,
	MobSlime,
	MobSnowman,
	MobSpider,
	MobSquid,
	MobStray,
	MobVex,
	MobVillager,
	MobVillagerGolem,
	MobVindicationVillager,
	MobWitch,
	MobWitherBoss,
	MobWitherSkeleton,
	MobWolf,
	MobZombie,
	MobZombieHorse,
	MobZombieVillager,
}

var hostileMobs = newMobSet(
	MobBlaze,
	MobCaveSpider,
	MobCreeper,
	MobElderGuardian,
	MobEnderDragon,
	MobEnderman,
	MobEndermite,
	MobEvocationVillager,
	MobGhast,
	MobGuardian,
	MobHusk,
	MobLavaSlime,
	MobPigZombie,
	MobShulker,
	MobSilverfish,
	MobSkeleton,
	MobSlime,
	MobSpider,
	MobStray,
	MobVex,
	MobVindicationVillager,
	MobWitch,
	MobWitherBoss,
	MobWitherSkeleton,
	MobZombie,
	MobZombieVillager,
)

var peacefulMobs = newMobSet(
	MobBat,
	MobChicken,
	MobCow,
	MobDonkey,
	MobGiant,
	MobHorse,
	MobLlama,
	MobMule,
	MobMushroomCow,
	MobOzelot,
	MobPig,
	MobPolarBear,
	MobRabbit,
	MobSheep,
	MobSkeletonHorse,
	MobSnowman,
	MobSquid,
	MobVillager,
	MobVillagerGolem,
	MobWolf,
	MobZombieHorse,
)

var foodMobs = newMobSet(
	MobChicken,
	MobCow,
	MobMushroomCow,
	MobPig,
	MobRabbit,
	MobSheep,
)
